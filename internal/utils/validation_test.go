package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{name: "valid feed ID", id: "feed-1"},
		{name: "valid uuid", id: "0b6f4c4e-3a55-4c1b-9d7e-2f1a8b9c0d11"},
		{name: "valid ID with dots and underscores", id: "vendor_2.v1"},
		{name: "empty ID", id: "", wantErr: true, errMsg: "id cannot be empty"},
		{name: "ID at max length", id: strings.Repeat("a", 100)},
		{name: "ID too long", id: strings.Repeat("a", 101), wantErr: true, errMsg: "id too long (max 100 characters)"},
		{name: "ID with invalid characters", id: "feed-1<script>", wantErr: true, errMsg: "id contains invalid characters"},
		{name: "ID with SQL injection attempt", id: "feed'; DROP TABLE kv_store; --", wantErr: true, errMsg: "id contains invalid characters"},
		{name: "ID with path traversal", id: "../../../etc/passwd", wantErr: true, errMsg: "id contains invalid characters"},
		{name: "ID with space", id: "feed 1", wantErr: true, errMsg: "id contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				require.Error(t, err, "ValidateID should return error for invalid ID")
				assert.Contains(t, err.Error(), tt.errMsg, "Error message should contain expected text")
			} else {
				assert.NoError(t, err, "ValidateID should not return error for valid ID")
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid simple query", query: "FDA"},
		{name: "valid query with spaces", query: "rare disease pathway"},
		{name: "empty query is valid", query: ""},
		{name: "query at max length", query: strings.Repeat("a", 200)},
		{name: "query too long", query: strings.Repeat("a", 201), wantErr: true, errMsg: "query too long (max 200 characters)"},
		{name: "query with special characters", query: "510(k) & CE Marking", wantErr: false},
		{name: "query with script tags", query: "<script>alert('xss')</script>", wantErr: true, errMsg: "query contains invalid characters"},
		{name: "query with SQL injection", query: "'; DROP TABLE kv_store; --", wantErr: true, errMsg: "query contains invalid characters"},
		{name: "query with comment markers", query: "EMA /* guidance */", wantErr: true, errMsg: "query contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr {
				require.Error(t, err, "ValidateQuery should return error for invalid query")
				assert.Contains(t, err.Error(), tt.errMsg, "Error message should contain expected text")
			} else {
				assert.NoError(t, err, "ValidateQuery should not return error for valid query")
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "normal input unchanged", input: "normal input", expected: "normal input"},
		{name: "script tags removed", input: "<script>alert('xss')</script>normal", expected: "alert('xss')normal"},
		{name: "html tags removed", input: "<div>content</div>", expected: "content"},
		{name: "multiple tags removed", input: "<p><strong>bold</strong> text</p>", expected: "bold text"},
		{name: "whitespace trimmed", input: "  FDA  ", expected: "FDA"},
		{name: "empty input", input: "", expected: ""},
		{name: "only tags", input: "<script></script><div></div>", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeInput(tt.input))
		})
	}
}

func TestQueriesKeepWhitespace(t *testing.T) {
	assert.Equal(t, " fda ", StripTags(" <b>fda</b> "))

	q, err := ValidateAndSanitizeQuery(" fda ")
	require.NoError(t, err)
	assert.Equal(t, " fda ", q)

	_, err = ValidateAndSanitizeQuery("fda;--")
	assert.Error(t, err)
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid date", date: "2024-01-15"},
		{name: "valid leap year date", date: "2024-02-29"},
		{name: "empty date is valid", date: ""},
		{name: "invalid date format", date: "01/15/2024", wantErr: true},
		{name: "invalid month", date: "2024-13-01", wantErr: true},
		{name: "invalid leap year date", date: "2023-02-29", wantErr: true},
		{name: "date with invalid characters", date: "2024-01-01<script>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid date format, use YYYY-MM-DD")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUrgency(t *testing.T) {
	for _, u := range []string{"", "High", "Medium", "Low"} {
		assert.NoError(t, ValidateUrgency(u), u)
	}
	for _, u := range []string{"high", "Critical", "LOW"} {
		assert.Error(t, ValidateUrgency(u), u)
	}
}

func TestValidateFeedSearchParams(t *testing.T) {
	assert.Empty(t, ValidateFeedSearchParams("fda", "High", "2024-01-01", "2024-01-31", map[string]string{"agency": "FDA"}))

	fieldErrors := ValidateFeedSearchParams("<b>", "Urgent", "2024-02-30", "tomorrow", map[string]string{"region": "EU--"})
	assert.Len(t, fieldErrors["q"], 1)
	assert.Len(t, fieldErrors["urgency"], 1)
	assert.Len(t, fieldErrors["dateFrom"], 1)
	assert.Len(t, fieldErrors["dateTo"], 1)
	assert.Len(t, fieldErrors["region"], 1)

	fieldErrors = ValidateFeedSearchParams("", "", "2024-02-01", "2024-01-01", nil)
	assert.Equal(t, []string{"dateFrom must not be after dateTo"}, fieldErrors["dateFrom"])
}

func TestParseFloatParam(t *testing.T) {
	params := url.Values{"minScore": {"90.5"}, "bad": {"ninety"}}

	v, fieldErrors := ParseFloatParam(params, "minScore", nil)
	assert.Equal(t, 90.5, v)
	assert.Empty(t, fieldErrors)

	v, fieldErrors = ParseFloatParam(params, "missing", fieldErrors)
	assert.Equal(t, 0.0, v)
	assert.Empty(t, fieldErrors)

	_, fieldErrors = ParseFloatParam(params, "bad", fieldErrors)
	assert.Equal(t, []string{`Invalid field value for field "bad".`}, fieldErrors["bad"])

	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity"} {
		v, fieldErrors := ParseFloatParam(url.Values{"minScore": {raw}}, "minScore", nil)
		assert.Equal(t, 0.0, v, raw)
		assert.Len(t, fieldErrors["minScore"], 1, raw)
	}
}

func TestParseIntID(t *testing.T) {
	id, err := ParseIntID("7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, raw := range []string{"", "0", "-1", "seven", "1.5", "1;--"} {
		_, err := ParseIntID(raw)
		assert.Error(t, err, raw)
	}
}
