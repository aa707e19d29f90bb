// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package estat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/estat-fetcher/pkg/types"
)

const singleTableJSON = `{
  "GET_STATS_LIST": {
    "RESULT": {"STATUS": 0, "ERROR_MSG": "正常に終了しました。"},
    "DATALIST_INF": {
      "NUMBER": 1,
      "TABLE_INF": {
        "@id": "0003343671",
        "STATISTICS_NAME": "家計調査 家計収支編 二人以上の世帯",
        "TITLE": {"@no": "1", "$": "用途分類（総数）"},
        "UPDATED_DATE": "2024-06-07"
      }
    }
  }
}`

const arrayOfOneJSON = `{
  "GET_STATS_LIST": {
    "RESULT": {"STATUS": 0, "ERROR_MSG": "正常に終了しました。"},
    "DATALIST_INF": {
      "NUMBER": 1,
      "TABLE_INF": [{
        "@id": "0003343671",
        "STATISTICS_NAME": "家計調査 家計収支編 二人以上の世帯",
        "TITLE": {"@no": "1", "$": "用途分類（総数）"},
        "UPDATED_DATE": "2024-06-07"
      }]
    }
  }
}`

func TestDecodeStatsList_SingleObjectEqualsArrayOfOne(t *testing.T) {
	single, err := decodeStatsList([]byte(singleTableJSON))
	require.NoError(t, err)
	array, err := decodeStatsList([]byte(arrayOfOneJSON))
	require.NoError(t, err)

	require.Len(t, single, 1)
	assert.Equal(t, array, single)
	assert.Equal(t, types.TableInfo{
		ID:             "0003343671",
		Title:          "用途分類（総数）",
		StatisticsName: "家計調査 家計収支編 二人以上の世帯",
		UpdatedDate:    "2024-06-07",
	}, single[0])
}

func TestDecodeStatsList_TitleShapes(t *testing.T) {
	body := `{"GET_STATS_LIST": {"RESULT": {"STATUS": 0}, "DATALIST_INF": {"TABLE_INF": [
		{"@id": "a", "TITLE": "plain title"},
		{"@id": "b", "TITLE": {"@no": "2", "$": "object title"}},
		{"@id": "c", "STATISTICS_NAME": "survey name"},
		{"@id": "d", "TITLE": {"@no": "3"}},
		{"@id": "e", "TITLE": 42}
	]}}}`

	tables, err := decodeStatsList([]byte(body))
	require.NoError(t, err)
	require.Len(t, tables, 5)

	assert.Equal(t, "plain title", tables[0].DisplayName())
	assert.Equal(t, "object title", tables[1].DisplayName())
	assert.Equal(t, "survey name", tables[2].DisplayName())
	assert.Equal(t, "Untitled", tables[3].DisplayName())
	assert.Equal(t, "42", tables[4].DisplayName())
}

func TestDecodeStatsList_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "non-zero status",
			body:    `{"GET_STATS_LIST": {"RESULT": {"STATUS": 100, "ERROR_MSG": "認証に失敗しました。"}}}`,
			wantErr: ErrNoResults,
		},
		{
			name:    "missing status",
			body:    `{"GET_STATS_LIST": {"RESULT": {}}}`,
			wantErr: ErrNoResults,
		},
		{
			name:    "missing envelope",
			body:    `{}`,
			wantErr: ErrNoResults,
		},
		{
			name:    "no table list",
			body:    `{"GET_STATS_LIST": {"RESULT": {"STATUS": 0}, "DATALIST_INF": {"NUMBER": 0}}}`,
			wantErr: ErrNoTables,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeStatsList([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeStatsList_APIErrorCarriesMessage(t *testing.T) {
	_, err := decodeStatsList([]byte(`{"GET_STATS_LIST": {"RESULT": {"STATUS": 100, "ERROR_MSG": "認証に失敗しました。"}}}`))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 100, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "認証に失敗しました。")
}

func TestDecodeStatsList_InvalidJSON(t *testing.T) {
	_, err := decodeStatsList([]byte(`<html>maintenance</html>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing getStatsList response")
}
