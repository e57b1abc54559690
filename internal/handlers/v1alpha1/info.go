package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/robotics-advisor/planner/pkg/version"

	api "github.com/robotics-advisor/planner/api/v1alpha1"
)

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	render.JSON(w, r, api.Info{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
	})
}
