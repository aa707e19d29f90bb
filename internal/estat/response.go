// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package estat

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/estat-fetcher/pkg/types"
)

// getStatsList JSON structures. Only the fields the fetcher reads are
// declared; e-Stat returns many more.
type statsListResponse struct {
	GetStatsList statsList `json:"GET_STATS_LIST"`
}

type statsList struct {
	Result      *apiResult   `json:"RESULT"`
	DatalistInf datalistInfo `json:"DATALIST_INF"`
}

type apiResult struct {
	Status   *int   `json:"STATUS"`
	ErrorMsg string `json:"ERROR_MSG"`
}

type datalistInfo struct {
	TableInf *tableList `json:"TABLE_INF"`
}

// tableList holds TABLE_INF, which e-Stat encodes as a bare object when the
// search matched exactly one table and as an array otherwise.
type tableList []tableInfo

func (l *tableList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '{' {
		var single tableInfo
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("decoding TABLE_INF object: %w", err)
		}
		*l = tableList{single}
		return nil
	}
	var many []tableInfo
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("decoding TABLE_INF array: %w", err)
	}
	*l = many
	return nil
}

type tableInfo struct {
	ID             string    `json:"@id"`
	StatisticsName string    `json:"STATISTICS_NAME"`
	Title          textValue `json:"TITLE"`
	UpdatedDate    string    `json:"UPDATED_DATE"`
}

// textValue decodes e-Stat's text nodes, which appear either as a plain
// string or as an object carrying the text under "$" (e.g.
// {"@no": "1", "$": "..."}).
type textValue string

func (t *textValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '{':
		var obj struct {
			Text json.RawMessage `json:"$"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("decoding text object: %w", err)
		}
		if len(obj.Text) == 0 {
			*t = ""
			return nil
		}
		return t.UnmarshalJSON(obj.Text)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding text: %w", err)
		}
		*t = textValue(s)
	default:
		// Numbers and booleans are kept in their JSON spelling.
		*t = textValue(data)
	}
	return nil
}

func (ti tableInfo) toTableInfo() types.TableInfo {
	return types.TableInfo{
		ID:             ti.ID,
		Title:          string(ti.Title),
		StatisticsName: ti.StatisticsName,
		UpdatedDate:    ti.UpdatedDate,
	}
}

// decodeStatsList parses a getStatsList body into table records. It returns
// ErrNoResults when the API status is absent or non-zero and ErrNoTables
// when the data list carries no TABLE_INF.
func decodeStatsList(body []byte) ([]types.TableInfo, error) {
	var resp statsListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing getStatsList response: %w", err)
	}

	result := resp.GetStatsList.Result
	if result == nil || result.Status == nil {
		return nil, ErrNoResults
	}
	if *result.Status != 0 {
		return nil, &APIError{Status: *result.Status, Message: result.ErrorMsg}
	}

	list := resp.GetStatsList.DatalistInf.TableInf
	if list == nil {
		return nil, ErrNoTables
	}

	tables := make([]types.TableInfo, 0, len(*list))
	for _, ti := range *list {
		tables = append(tables, ti.toTableInfo())
	}
	return tables, nil
}
