package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const youtubeAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
 <title>Channel</title>
 <link rel="alternate" href="https://www.youtube.com/channel/UC123"/>
 <entry>
  <id>yt:video:ep2</id>
  <yt:videoId>ep2</yt:videoId>
  <title>Ep2</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=ep2"/>
  <published>2026-10-15T10:00:00+00:00</published>
 </entry>
 <entry>
  <id>yt:video:ep1</id>
  <yt:videoId>ep1</yt:videoId>
  <title>Ep1</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=ep1"/>
  <published>2026-10-01T10:00:00+00:00</published>
 </entry>
</feed>`

func renderFeed(t *testing.T, title string, items ...*feeds.Item) string {
	t.Helper()
	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: "http://x/"},
		Description: "test feed",
		Created:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Items:       items,
	}
	rss, err := feed.ToRss()
	require.NoError(t, err)
	return rss
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchLatestRSS(t *testing.T) {
	body := renderFeed(t, "Channel",
		&feeds.Item{Title: "Ep2", Link: &feeds.Link{Href: "http://x/2"}, Created: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
		&feeds.Item{Title: "Ep1", Link: &feeds.Link{Href: "http://x/1"}, Created: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
	)
	srv := serve(t, http.StatusOK, body)

	meta, entry, err := New(time.Second).FetchLatest(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Channel", meta.Title)
	assert.Equal(t, srv.URL, meta.URL)
	assert.Equal(t, "Ep2", entry.Title)
	assert.Equal(t, "http://x/2", entry.Link)
	require.NotNil(t, entry.Published)
}

func TestFetchLatestAtom(t *testing.T) {
	srv := serve(t, http.StatusOK, youtubeAtomFeed)

	meta, entry, err := New(time.Second).FetchLatest(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Channel", meta.Title)
	assert.Equal(t, "Ep2", entry.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=ep2", entry.Link)
	require.NotNil(t, entry.Published)
	assert.Equal(t, 2026, entry.Published.Year())
}

func TestFetchLatestUntitledFeedFallsBackToURL(t *testing.T) {
	body := renderFeed(t, "", &feeds.Item{Title: "Ep1", Link: &feeds.Link{Href: "http://x/1"}, Created: time.Now()})
	srv := serve(t, http.StatusOK, body)

	meta, _, err := New(time.Second).FetchLatest(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, meta.Title)
}

func TestFetchLatestEmptyFeed(t *testing.T) {
	srv := serve(t, http.StatusOK, renderFeed(t, "Channel"))

	_, _, err := New(time.Second).FetchLatest(context.Background(), srv.URL)
	assert.ErrorIs(t, err, errors.ErrEmptyFeed)
	assert.NotErrorIs(t, err, errors.ErrFeedFetch)
}

func TestFetchLatestEntryWithoutLink(t *testing.T) {
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>Channel</title><item><title>Ep1</title></item></channel></rss>`
	srv := serve(t, http.StatusOK, body)

	_, _, err := New(time.Second).FetchLatest(context.Background(), srv.URL)
	assert.ErrorIs(t, err, errors.ErrEntryWithoutLink)
}

func TestFetchLatestFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops"},
		{name: "not found", status: http.StatusNotFound, body: ""},
		{name: "not a feed", status: http.StatusOK, body: "not xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)

			_, _, err := New(time.Second).FetchLatest(context.Background(), srv.URL)
			assert.ErrorIs(t, err, errors.ErrFeedFetch)
		})
	}
}

func TestFetchLatestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, err := New(time.Second).FetchLatest(context.Background(), url)
	assert.ErrorIs(t, err, errors.ErrFeedFetch)
}

func TestFetchLatestHonoursContext(t *testing.T) {
	srv := serve(t, http.StatusOK, youtubeAtomFeed)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New(time.Second).FetchLatest(ctx, srv.URL)
	assert.ErrorIs(t, err, errors.ErrFeedFetch)
}
