package test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-ops/domain"
	"chat-ops/infrastructure/storage"
	"chat-ops/mocks"
	"chat-ops/services"
	"chat-ops/sink"
)

// Test_Scenario drives a full add run through the real service, sink, and
// history layers; only the gateway session and the pacing waits are mocked.
func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)

	const groupID = "group-42"
	targets := []domain.Target{"+33 6 11 11 11 11", "33622222222", "33633333333"}

	// Gateway session backed by a mutable member list, so the runner's
	// verification re-queries observe the effect of each applied action.
	members := []domain.Target{"33622222222"}
	client := mocks.NewMockSessionClient(ctrl)
	client.EXPECT().GroupState(gomock.Any(), groupID).DoAndReturn(
		func(context.Context, string) (domain.GroupState, error) {
			return domain.GroupState{
				GroupID:      groupID,
				Members:      append([]domain.Target(nil), members...),
				ActorIsAdmin: true,
			}, nil
		}).AnyTimes()
	client.EXPECT().ApplyPrimary(gomock.Any(), groupID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, target domain.Target) error {
			members = append(members, target)
			return nil
		}).Times(2)
	client.EXPECT().SendNotification(gomock.Any(), gomock.Any(), "welcome aboard").
		Return(nil).Times(2)

	wait := mocks.NewMockDelayer(ctrl)
	wait.EXPECT().Wait(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	resultDir := t.TempDir()
	history := storage.NewRunRepository(db, log)
	service := services.NewParticipantService(
		log,
		client,
		mocks.NewMockSessionClient(ctrl),
		domain.DelayPolicy{
			Verify:       3 * time.Second,
			Fallback:     2 * time.Second,
			BetweenItems: 5 * time.Second,
			AfterFailure: 2 * time.Second,
		},
		wait,
		sink.NewDiskSink(resultDir, log),
		history,
	)

	report, err := service.Add(ctx, groupID, targets, "welcome aboard", nil)
	req.NoError(err)
	req.Len(report.Outcomes, 3)
	req.Equal([]domain.Status{
		domain.StatusSucceededPrimary,
		domain.StatusAlreadySatisfied,
		domain.StatusSucceededPrimary,
	}, lo.Map(report.Outcomes, func(o domain.Outcome, _ int) domain.Status { return o.Status }))

	// The artifact must land on disk with the operation in its name.
	entries, err := os.ReadDir(resultDir)
	req.NoError(err)
	req.Len(entries, 1)
	req.True(strings.HasPrefix(entries[0].Name(), "add_results_"))
	data, err := os.ReadFile(filepath.Join(resultDir, entries[0].Name()))
	req.NoError(err)
	req.Contains(string(data), "succeeded_primary")

	// The run must be replayable from the history database.
	recent, err := history.Recent(10)
	req.NoError(err)
	req.Len(recent, 1)
	req.Equal(report.RunID, recent[0].RunID)
	req.Equal(3, recent[0].Summary().Total)
	req.Equal(1, recent[0].Summary().AlreadySatisfied)
}
