package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/robotics-advisor/planner/internal/costing"
)

const videoTaskPrompt = `Analyze the industrial process shown in this video.
Break it down into a sequence of distinct tasks performed by humans or machines.
Describe each task clearly, focusing on actions relevant for potential automation.
Output the tasks as a JSON list, where each object has 'id' (sequential number), 'action' (description), and 'actor_type' ('human' or 'machine').
Example: [{"id": 1, "action": "Pick up component X", "actor_type": "human"}, {"id": 2, "action": "Place component X in fixture", "actor_type": "human"}]`

// taskRecord mirrors the JSON shape the model is instructed to emit.
type taskRecord struct {
	ID        int    `json:"id"`
	Action    string `json:"action"`
	ActorType string `json:"actor_type"`
}

// AnalyzeVideoTasks sends the video at the given GCS URI through the
// perception prompt and returns the typed task breakdown.
func (c *Client) AnalyzeVideoTasks(ctx context.Context, videoURI string) ([]costing.Task, error) {
	if !strings.HasPrefix(videoURI, "gs://") {
		return nil, fmt.Errorf("video uri must be a gs:// address, got %q", videoURI)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(videoURI, "video/mp4"),
			genai.NewPartFromText(videoTaskPrompt),
		}, genai.RoleUser),
	}

	reply, err := c.generate(ctx, contents)
	if err != nil {
		return nil, fmt.Errorf("video analysis: %w", err)
	}

	tasks, err := parseTasks(reply)
	if err != nil {
		return nil, fmt.Errorf("video analysis: %w", err)
	}
	return tasks, nil
}

// parseTasks converts the raw model reply to typed tasks, rejecting malformed
// records at the boundary instead of propagating untyped maps downstream.
func parseTasks(reply string) ([]costing.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(stripFences(reply)), &records); err != nil {
		return nil, fmt.Errorf("parsing task list: %w", err)
	}

	tasks := make([]costing.Task, 0, len(records))
	seen := make(map[int]bool, len(records))
	for _, record := range records {
		if record.Action == "" {
			return nil, fmt.Errorf("task %d has no action", record.ID)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("duplicate task id %d", record.ID)
		}
		seen[record.ID] = true

		actor := costing.ActorType(record.ActorType)
		if actor != costing.ActorHuman && actor != costing.ActorMachine {
			return nil, fmt.Errorf("task %d has unknown actor type %q", record.ID, record.ActorType)
		}

		tasks = append(tasks, costing.Task{ID: record.ID, Action: record.Action, Actor: actor})
	}
	return tasks, nil
}
