package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotics-advisor/planner/internal/costing"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `[{"id":1}]`, `[{"id":1}]`},
		{"json fence", "```json\n[{\"id\":1}]\n```", `[{"id":1}]`},
		{"bare fence", "```\n[{\"id\":1}]\n```", `[{"id":1}]`},
		{"surrounding whitespace", "  \n[{\"id\":1}]\n ", `[{"id":1}]`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripFences(tc.in), tc.name)
	}
}

func TestParseTasks(t *testing.T) {
	reply := "```json\n" + `[
  {"id": 1, "action": "Pick up tire assembly", "actor_type": "human"},
  {"id": 2, "action": "Press bonds the rim", "actor_type": "machine"}
]` + "\n```"

	tasks, err := parseTasks(reply)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, costing.Task{ID: 1, Action: "Pick up tire assembly", Actor: costing.ActorHuman}, tasks[0])
	assert.Equal(t, costing.ActorMachine, tasks[1].Actor)
}

func TestParseTasks_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"not json", "the process has three steps"},
		{"unknown actor", `[{"id": 1, "action": "solder", "actor_type": "android"}]`},
		{"missing action", `[{"id": 1, "actor_type": "human"}]`},
		{"duplicate id", `[{"id": 1, "action": "a", "actor_type": "human"}, {"id": 1, "action": "b", "actor_type": "human"}]`},
	}
	for _, tc := range cases {
		_, err := parseTasks(tc.reply)
		assert.Error(t, err, tc.name)
	}
}

func TestParseOptions(t *testing.T) {
	reply := `{
  "automation_options": [
    {
      "option_id": "Option_1",
      "summary": "Automate pick and place with atlas",
      "assignments": [
        {"task_id": 1, "robot_name": "atlas", "reason_automated": "payload sufficient for tire assembly"}
      ],
      "unassigned_human_tasks": [
        {"task_id": 3, "reason_not_automated": "requires fine dexterity"}
      ]
    }
  ]
}`

	options, err := parseOptions(reply)
	require.NoError(t, err)
	require.Len(t, options, 1)

	opt := options[0]
	assert.Equal(t, "Option_1", opt.OptionID)
	require.Len(t, opt.Assignments, 1)
	assert.Equal(t, "atlas", opt.Assignments[0].RobotName)
	assert.Equal(t, 1, opt.Assignments[0].TaskID)
	require.Len(t, opt.Unassigned, 1)
	assert.Equal(t, 3, opt.Unassigned[0].TaskID)
}

func TestParseOptions_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"not json", "Option one looks best."},
		{"missing option id", `{"automation_options": [{"summary": "x"}]}`},
		{"assignment without robot", `{"automation_options": [{"option_id": "A", "assignments": [{"task_id": 1}]}]}`},
	}
	for _, tc := range cases {
		_, err := parseOptions(tc.reply)
		assert.Error(t, err, tc.name)
	}
}

func TestBuildOptionPrompt_EmbedsData(t *testing.T) {
	tasks := []costing.Task{{ID: 1, Action: "inspect seam", Actor: costing.ActorHuman}}
	prompt, err := buildOptionPrompt(tasks, nil)
	require.NoError(t, err)
	assert.True(t, strings.Contains(prompt, "inspect seam"))
	assert.True(t, strings.Contains(prompt, "automation_options"))
}
