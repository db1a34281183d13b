package commands_test

import (
	"testing"

	"github.com/loilo-inc/spincage/cli/spin/commands"
	"github.com/loilo-inc/spincage/mocks/mock_types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRunDemo(t *testing.T) {
	t.Run("touches every logging surface in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_types.NewMockSpinner(ctrl)
		gomock.InOrder(
			s.EXPECT().Debug("demo starting", gomock.Any()),
			s.EXPECT().Info("connecting to upstream"),
			s.EXPECT().Verbose("upstream answered", gomock.Any()),
			s.EXPECT().Info("syncing shards"),
			s.EXPECT().Warn("shard 3 is slow", gomock.Any()),
			s.EXPECT().Info("finalizing"),
		)
		err := commands.RunDemo(s, false)
		assert.NoError(t, err)
	})
	t.Run("ends with a quitting error when asked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_types.NewMockSpinner(ctrl)
		gomock.InOrder(
			s.EXPECT().Debug("demo starting", gomock.Any()),
			s.EXPECT().Info("connecting to upstream"),
			s.EXPECT().Verbose("upstream answered", gomock.Any()),
			s.EXPECT().Info("syncing shards"),
			s.EXPECT().Warn("shard 3 is slow", gomock.Any()),
			s.EXPECT().Info("finalizing"),
			s.EXPECT().Error("upstream closed the stream", gomock.Any()),
		)
		err := commands.RunDemo(s, true)
		assert.NoError(t, err)
	})
}
