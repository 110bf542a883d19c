package services

import (
	"chat-ops/domain"
	"chat-ops/mocks"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportService_Export(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	client := mocks.NewMockSessionClient(ctrl)
	client.EXPECT().Groups(gomock.Any()).Return([]domain.GroupInfo{
		{
			ID:    "g1",
			Name:  "Ops",
			Owner: "33600000000",
			Participants: []domain.Participant{
				{ID: "1111", IsAdmin: true},
				{ID: "2222", IsAdmin: false},
			},
		},
		{ID: "g2", Name: "Announcements", Owner: "33600000000"},
	}, nil)

	dir := t.TempDir()
	service := NewExportService(testLogger(), client, dir)

	jsonPath, csvPath, err := service.Export(context.Background())
	req.NoError(err)

	data, err := os.ReadFile(jsonPath)
	req.NoError(err)
	var groups []domain.GroupInfo
	req.NoError(json.Unmarshal(data, &groups))
	req.Len(groups, 2)
	req.Equal("Ops", groups[0].Name)

	csvData, err := os.ReadFile(csvPath)
	req.NoError(err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	req.Equal("group_id,group_name,participant,is_admin", lines[0])
	req.Len(lines, 3) // header + two participant rows, empty group emits none
	req.Contains(lines[1], "g1,Ops,1111,true")
}
