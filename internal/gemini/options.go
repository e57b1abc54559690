package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/robotics-advisor/planner/internal/catalog"
	"github.com/robotics-advisor/planner/internal/costing"
)

const optionPlanPromptHeader = `You are an extremely meticulous robotics automation engineer evaluating potential solutions.
Analyze the process tasks and available robots below and generate 1 to 3 distinct, plausible automation options, focusing on replacing 'human' tasks.
For each assignment include a mandatory 'reason_automated' field linking a robot capability to the task need.
For each human task left unassigned include a mandatory 'reason_not_automated' field naming the limiting factor.
Do not assign 'machine' tasks. Aim for diverse options and provide a brief overall 'summary' per option.
Your output MUST be ONLY a single valid JSON object of this exact shape, with no extra text or markdown:

{
  "automation_options": [
    {
      "option_id": "String",
      "summary": "String",
      "assignments": [
        {"task_id": Number, "robot_name": "String", "reason_automated": "String"}
      ],
      "unassigned_human_tasks": [
        {"task_id": Number, "reason_not_automated": "String"}
      ]
    }
  ]
}`

// plannerRobot is the robot view given to the planning model: capabilities
// only, no cost figures. Costing stays deterministic and out of the LLM.
type plannerRobot struct {
	RobotName          string  `json:"robot_name"`
	NumLinks           int     `json:"num_links"`
	NumJoints          int     `json:"num_joints"`
	EstimatedReachM    float64 `json:"estimated_reach_m"`
	EstimatedPayloadKg float64 `json:"estimated_payload_kg"`
}

type optionsReply struct {
	AutomationOptions []optionRecord `json:"automation_options"`
}

type optionRecord struct {
	OptionID    string `json:"option_id"`
	Summary     string `json:"summary"`
	Assignments []struct {
		TaskID          int    `json:"task_id"`
		RobotName       string `json:"robot_name"`
		ReasonAutomated string `json:"reason_automated"`
	} `json:"assignments"`
	UnassignedHumanTasks []struct {
		TaskID             int    `json:"task_id"`
		ReasonNotAutomated string `json:"reason_not_automated"`
	} `json:"unassigned_human_tasks"`
}

// PlanOptions asks the model for automation options given the observed tasks
// and the robots available in the catalog.
func (c *Client) PlanOptions(ctx context.Context, tasks []costing.Task, robots []catalog.Robot) ([]costing.AutomationOption, error) {
	prompt, err := buildOptionPrompt(tasks, robots)
	if err != nil {
		return nil, fmt.Errorf("option planning: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	reply, err := c.generate(ctx, contents)
	if err != nil {
		return nil, fmt.Errorf("option planning: %w", err)
	}

	options, err := parseOptions(reply)
	if err != nil {
		return nil, fmt.Errorf("option planning: %w", err)
	}
	return options, nil
}

func buildOptionPrompt(tasks []costing.Task, robots []catalog.Robot) (string, error) {
	taskRecords := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		taskRecords = append(taskRecords, taskRecord{ID: t.ID, Action: t.Action, ActorType: string(t.Actor)})
	}
	taskJSON, err := json.MarshalIndent(taskRecords, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding tasks: %w", err)
	}

	robotRecords := make([]plannerRobot, 0, len(robots))
	for _, r := range robots {
		robotRecords = append(robotRecords, plannerRobot{
			RobotName:          r.Name,
			NumLinks:           r.Capabilities.Links,
			NumJoints:          r.Capabilities.Joints,
			EstimatedReachM:    r.Capabilities.EstimatedReachM,
			EstimatedPayloadKg: r.Capabilities.EstimatedPayloadKg,
		})
	}
	robotJSON, err := json.MarshalIndent(robotRecords, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding robots: %w", err)
	}

	return fmt.Sprintf("%s\n\nProcess Tasks:\n%s\n\nAvailable Robots (capabilities are estimates):\n%s",
		optionPlanPromptHeader, taskJSON, robotJSON), nil
}

func parseOptions(reply string) ([]costing.AutomationOption, error) {
	var parsed optionsReply
	if err := json.Unmarshal([]byte(stripFences(reply)), &parsed); err != nil {
		return nil, fmt.Errorf("parsing automation options: %w", err)
	}

	options := make([]costing.AutomationOption, 0, len(parsed.AutomationOptions))
	for _, record := range parsed.AutomationOptions {
		if record.OptionID == "" {
			return nil, fmt.Errorf("automation option without an option_id")
		}

		option := costing.AutomationOption{
			OptionID: record.OptionID,
			Summary:  record.Summary,
		}
		for _, a := range record.Assignments {
			if a.RobotName == "" {
				return nil, fmt.Errorf("option %s: assignment for task %d has no robot name", record.OptionID, a.TaskID)
			}
			option.Assignments = append(option.Assignments, costing.Assignment{
				TaskID:    a.TaskID,
				RobotName: a.RobotName,
				Reason:    a.ReasonAutomated,
			})
		}
		for _, u := range record.UnassignedHumanTasks {
			option.Unassigned = append(option.Unassigned, costing.UnassignedTask{
				TaskID: u.TaskID,
				Reason: u.ReasonNotAutomated,
			})
		}
		options = append(options, option)
	}
	return options, nil
}
