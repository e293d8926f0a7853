package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExistsStatusHandling(t *testing.T) {
	tests := map[string]struct {
		status int
		want   bool
	}{
		"ok":              {status: http.StatusOK, want: true},
		"partial content": {status: http.StatusPartialContent, want: true},
		"not modified":    {status: http.StatusNotModified, want: true},
		"not found":       {status: http.StatusNotFound, want: false},
		"server error":    {status: http.StatusInternalServerError, want: false},
		"forbidden":       {status: http.StatusForbidden, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			c := NewChecker(time.Second)
			assert.Equal(t, tt.want, c.Exists(context.Background(), ts.URL+"/a.jpg"))
		})
	}
}

func TestExistsSendsRangeRequest(t *testing.T) {
	var gotRange string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		w.WriteHeader(http.StatusPartialContent)
	}))
	defer ts.Close()

	c := NewChecker(time.Second)
	assert.True(t, c.Exists(context.Background(), ts.URL+"/a.jpg"))
	assert.Equal(t, "bytes=0-0", gotRange)
}

func TestExistsCachesResult(t *testing.T) {
	var probes atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewChecker(time.Second)
	url := ts.URL + "/a.jpg"
	assert.True(t, c.Exists(context.Background(), url))
	assert.True(t, c.Exists(context.Background(), url))
	assert.Equal(t, int32(1), probes.Load())
}

func TestExistsUnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL + "/a.jpg"
	ts.Close()

	c := NewChecker(time.Second)
	assert.False(t, c.Exists(context.Background(), url))
}
