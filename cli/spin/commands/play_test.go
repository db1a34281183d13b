package commands_test

import (
	"testing"

	"github.com/loilo-inc/spincage/cli/spin/commands"
	"github.com/loilo-inc/spincage/mocks/mock_types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplyStep(t *testing.T) {
	levels := []struct {
		level  string
		expect func(s *mock_types.MockSpinner) *gomock.Call
	}{
		{"info", func(s *mock_types.MockSpinner) *gomock.Call { return s.EXPECT().Info("msg") }},
		{"verbose", func(s *mock_types.MockSpinner) *gomock.Call { return s.EXPECT().Verbose("msg") }},
		{"debug", func(s *mock_types.MockSpinner) *gomock.Call { return s.EXPECT().Debug("msg") }},
		{"warn", func(s *mock_types.MockSpinner) *gomock.Call { return s.EXPECT().Warn("msg") }},
		{"error", func(s *mock_types.MockSpinner) *gomock.Call { return s.EXPECT().Error("msg") }},
	}
	for _, tt := range levels {
		t.Run(tt.level, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock_types.NewMockSpinner(ctrl)
			tt.expect(s)
			commands.ApplyStep(s, commands.Step{Level: tt.level, Msg: "msg"})
		})
	}
	t.Run("passes one option per setting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_types.NewMockSpinner(ctrl)
		s.EXPECT().Error("gave up", gomock.Any(), gomock.Any(), gomock.Any())
		commands.ApplyStep(s, commands.Step{
			Level:      "error",
			Msg:        "gave up",
			Fields:     map[string]any{"attempt": 3},
			Quit:       true,
			ReturnCode: 2,
		})
	})
}

func TestPlayScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_types.NewMockSpinner(ctrl)
	gomock.InOrder(
		s.EXPECT().Info("starting"),
		s.EXPECT().Verbose("resolved"),
		s.EXPECT().Warn("retry scheduled"),
	)
	err := commands.PlayScenario(s, &commands.Scenario{
		Name: "release",
		Steps: []commands.Step{
			{Level: "info", Msg: "starting"},
			{Level: "verbose", Msg: "resolved"},
			{Level: "warn", Msg: "retry scheduled", SleepMillis: 1},
		},
	})
	assert.NoError(t, err)
}
