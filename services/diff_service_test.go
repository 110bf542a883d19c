package services

import (
	"chat-ops/domain"
	"chat-ops/mocks"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiffService_Diff(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	before := mocks.NewMockTargetSource(ctrl)
	before.EXPECT().Load(gomock.Any()).
		Return([]domain.Target{"1111", "2222", "3333"}, nil)
	after := mocks.NewMockTargetSource(ctrl)
	after.EXPECT().Load(gomock.Any()).
		Return([]domain.Target{"2222", "3333", "4444"}, nil)

	service := NewDiffService(testLogger(), t.TempDir())

	result, err := service.Diff(context.Background(), before, after)
	req.NoError(err)
	req.Equal([]domain.Target{"4444"}, result.Added)
	req.Equal([]domain.Target{"1111"}, result.Removed)
	req.ElementsMatch([]domain.Target{"2222", "3333"}, result.Unchanged)
}

func TestDiffService_Write(t *testing.T) {
	req := require.New(t)
	service := NewDiffService(testLogger(), t.TempDir())

	path, err := service.Write(DiffResult{
		Added:   []domain.Target{"4444"},
		Removed: []domain.Target{"1111"},
	})
	req.NoError(err)

	data, err := os.ReadFile(path)
	req.NoError(err)
	content := string(data)
	req.Contains(content, "ADDED (1)")
	req.Contains(content, "4444")
	req.Contains(content, "REMOVED (1)")
	req.Contains(content, "UNCHANGED (0)")
}

func TestDiffService_SourceError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	before := mocks.NewMockTargetSource(ctrl)
	before.EXPECT().Load(gomock.Any()).Return(nil, os.ErrNotExist)

	service := NewDiffService(testLogger(), t.TempDir())
	_, err := service.Diff(context.Background(), before, mocks.NewMockTargetSource(ctrl))
	req.ErrorIs(err, os.ErrNotExist)
}
