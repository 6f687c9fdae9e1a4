package dto

import "voyage/internal/domains/cascade/model"

type LevelResponse struct {
	Level string `json:"level"`
	Rows  int64  `json:"rows"`
}

type DeleteResponse struct {
	Root    string          `json:"root"`
	ID      string          `json:"id"`
	Deleted []LevelResponse `json:"deleted"`
}

func (r *DeleteResponse) FromModel(report model.Report) {
	r.Root = report.Root
	r.ID = report.ID

	r.Deleted = make([]LevelResponse, len(report.Deleted))
	for i, count := range report.Deleted {
		r.Deleted[i] = LevelResponse{Level: count.Level, Rows: count.Rows}
	}
}
