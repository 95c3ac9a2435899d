package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ajuarez99/ballknowers/internal/domain/league"
)

var draftHeader = []string{
	"pick_no", "round", "draft_slot", "roster_id", "picked_by",
	"player_name", "team_pos", "username", "team_name",
}

// WriteDraftCSV writes rows in the order given, preceded by a header.
func WriteDraftCSV(w io.Writer, rows []league.DraftRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(draftHeader); err != nil {
		return fmt.Errorf("writing draft header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.PickNo),
			strconv.Itoa(r.Round),
			strconv.Itoa(r.DraftSlot),
			strconv.Itoa(r.RosterID),
			r.PickedBy,
			r.PlayerName,
			r.TeamPos,
			r.Username,
			r.TeamName,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing draft pick %d: %w", r.PickNo, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
