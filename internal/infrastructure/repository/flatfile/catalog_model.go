package flatfile

import (
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

// Column positions of the players CSV. Order and count are part of the file contract.
const (
	colID = iota
	colName
	colRating
	colMarketValue
	colAge
	colTeamID
	colClubName
	colPosition
	colGoals
	colAssists
	colSaves
	colPlayerImageURL
	colClubImageURL

	catalogColumnCount
)

const (
	catalogSeparator = ","
	catalogHeader    = "id,name,rating,marketValue,age,teamID,clubName,position,goals,assists,saves,playerImageURL,clubImageURL"
)

var numericColumns = []struct {
	index int
	name  string
}{
	{colID, "id"},
	{colRating, "rating"},
	{colMarketValue, "marketValue"},
	{colAge, "age"},
	{colTeamID, "teamID"},
	{colGoals, "goals"},
	{colAssists, "assists"},
	{colSaves, "saves"},
}

type catalogRow struct {
	line   int
	fields []string
}

type catalogDocument struct {
	header    string
	hasHeader bool
	rows      []catalogRow
}

// splitCatalog breaks a CSV body into its header and data rows. Blank lines are dropped.
// Fields are split on every comma; quoting is not supported.
func splitCatalog(body []byte) catalogDocument {
	var doc catalogDocument
	if len(body) == 0 {
		return doc
	}

	lines := strings.Split(string(body), "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 {
			doc.header = line
			doc.hasHeader = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		doc.rows = append(doc.rows, catalogRow{
			line:   i + 1,
			fields: strings.Split(line, catalogSeparator),
		})
	}

	return doc
}

func decodePlayerRow(source string, row catalogRow) (player.Player, error) {
	if len(row.fields) != catalogColumnCount {
		return player.Player{}, storage.Malformedf(source, "line %d: expected %d columns, got %d", row.line, catalogColumnCount, len(row.fields))
	}

	var nums [catalogColumnCount]int64
	for _, col := range numericColumns {
		raw := strings.TrimSpace(row.fields[col.index])
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return player.Player{}, storage.Malformedf(source, "line %d: column %s: invalid integer %q", row.line, col.name, raw)
		}
		nums[col.index] = value
	}

	return player.Player{
		ID:             nums[colID],
		Name:           row.fields[colName],
		Rating:         nums[colRating],
		MarketValue:    nums[colMarketValue],
		Age:            nums[colAge],
		TeamID:         nums[colTeamID],
		ClubName:       row.fields[colClubName],
		Position:       player.Position(row.fields[colPosition]),
		Goals:          nums[colGoals],
		Assists:        nums[colAssists],
		Saves:          nums[colSaves],
		PlayerImageURL: row.fields[colPlayerImageURL],
		ClubImageURL:   row.fields[colClubImageURL],
	}, nil
}

// writeDriftedRow re-encodes row with the drifting columns taken from p.
// Every other column is written back untouched.
func writeDriftedRow(buf *bytebufferpool.ByteBuffer, row catalogRow, p player.Player) {
	for col, field := range row.fields {
		if col > 0 {
			_, _ = buf.WriteString(catalogSeparator)
		}
		switch col {
		case colMarketValue:
			buf.B = strconv.AppendInt(buf.B, p.MarketValue, 10)
		case colGoals:
			buf.B = strconv.AppendInt(buf.B, p.Goals, 10)
		case colAssists:
			buf.B = strconv.AppendInt(buf.B, p.Assists, 10)
		case colSaves:
			buf.B = strconv.AppendInt(buf.B, p.Saves, 10)
		default:
			_, _ = buf.WriteString(field)
		}
	}
	_ = buf.WriteByte('\n')
}

// writePlayerRow encodes a full player in column order. Text fields must not contain the
// separator since the format has no quoting.
func writePlayerRow(buf *bytebufferpool.ByteBuffer, source string, p player.Player) error {
	text := []string{p.Name, p.ClubName, string(p.Position), p.PlayerImageURL, p.ClubImageURL}
	for _, v := range text {
		if strings.ContainsAny(v, catalogSeparator+"\r\n") {
			return storage.Malformedf(source, "player %d: field %q cannot be stored unquoted", p.ID, v)
		}
	}

	buf.B = strconv.AppendInt(buf.B, p.ID, 10)
	_, _ = buf.WriteString(catalogSeparator + p.Name + catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.Rating, 10)
	_, _ = buf.WriteString(catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.MarketValue, 10)
	_, _ = buf.WriteString(catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.Age, 10)
	_, _ = buf.WriteString(catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.TeamID, 10)
	_, _ = buf.WriteString(catalogSeparator + p.ClubName + catalogSeparator + string(p.Position) + catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.Goals, 10)
	_, _ = buf.WriteString(catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.Assists, 10)
	_, _ = buf.WriteString(catalogSeparator)
	buf.B = strconv.AppendInt(buf.B, p.Saves, 10)
	_, _ = buf.WriteString(catalogSeparator + p.PlayerImageURL + catalogSeparator + p.ClubImageURL)
	_ = buf.WriteByte('\n')
	return nil
}
