package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/thoas/go-funk"

	srvMappers "github.com/robotics-advisor/planner/internal/service/mappers"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
)

// (GET /api/v1/robots)
func (h *ServiceHandler) ListRobots(w http.ResponseWriter, r *http.Request) {
	robots := funk.Map(h.catalog.Robots(), srvMappers.RobotToApi).([]api.Robot)
	render.JSON(w, r, robots)
}
