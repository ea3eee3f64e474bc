package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPageRangeBucket(t *testing.T) {
	cases := map[int]string{
		1:   "1-10",
		10:  "1-10",
		11:  "11-50",
		50:  "11-50",
		51:  "51-100",
		100: "51-100",
		101: "100+",
	}
	for page, want := range cases {
		assert.Equal(t, want, pageRangeBucket(page), "page %d", page)
	}
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("201", "11-50"))
	RecordRequest(201, 12)
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("201", "11-50"))
	assert.Equal(t, before+1, after)
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(ErrorsTotal.WithLabelValues("validation"))
	RecordError("validation")
	assert.Equal(t, before+1, testutil.ToFloat64(ErrorsTotal.WithLabelValues("validation")))
}
