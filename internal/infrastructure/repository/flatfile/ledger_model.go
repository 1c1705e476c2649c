package flatfile

import (
	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
)

// ledgerDocumentModel is the team.json wire shape. Key casing is part of the file contract.
type ledgerDocumentModel struct {
	Budget *int64              `json:"budget" validate:"required"`
	Team   *[]ledgerEntryModel `json:"team"`
}

type ledgerEntryModel struct {
	ID             *int64 `json:"ID" validate:"required"`
	Name           string `json:"Name"`
	ClubName       string `json:"ClubName"`
	Position       string `json:"Position"`
	PlayerImageURL string `json:"PlayerImageURL"`
	ClubImageURL   string `json:"ClubImageURL"`
}

func toLedgerModel(doc ledger.Document) ledgerDocumentModel {
	budget := doc.Budget
	team := make([]ledgerEntryModel, 0, len(doc.Team))
	for _, s := range doc.Team {
		id := s.ID
		team = append(team, ledgerEntryModel{
			ID:             &id,
			Name:           s.Name,
			ClubName:       s.ClubName,
			Position:       string(s.Position),
			PlayerImageURL: s.PlayerImageURL,
			ClubImageURL:   s.ClubImageURL,
		})
	}

	return ledgerDocumentModel{
		Budget: &budget,
		Team:   &team,
	}
}

// toDomain expects a model that already passed validation.
func (m ledgerDocumentModel) toDomain() ledger.Document {
	doc := ledger.Document{Budget: *m.Budget}
	if m.Team == nil {
		return doc
	}

	doc.Team = make([]player.Summary, 0, len(*m.Team))
	for _, e := range *m.Team {
		doc.Team = append(doc.Team, player.Summary{
			ID:             *e.ID,
			Name:           e.Name,
			ClubName:       e.ClubName,
			Position:       player.Position(e.Position),
			PlayerImageURL: e.PlayerImageURL,
			ClubImageURL:   e.ClubImageURL,
		})
	}
	return doc
}
