package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/youtube"
)

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
	)

	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
		DeferCleanup(server.Close)
	})

	It("searches with snippet, video type, and key", func() {
		var gotQuery map[string]string
		handler = func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"part":       r.URL.Query().Get("part"),
				"type":       r.URL.Query().Get("type"),
				"maxResults": r.URL.Query().Get("maxResults"),
				"q":          r.URL.Query().Get("q"),
				"key":        r.URL.Query().Get("key"),
			}
			w.Write([]byte(`{"items":[
				{"id":{"videoId":"abc123"},"snippet":{"title":"Guided breathing","thumbnails":{"medium":{"url":"https://i.ytimg.com/vi/abc123/mqdefault.jpg"}}}},
				{"id":{"videoId":"def456"},"snippet":{"title":"Calming music","thumbnails":{"default":{"url":"https://i.ytimg.com/vi/def456/default.jpg"}}}}
			]}`))
		}

		client := youtube.NewClient("yt-key", server.URL, 3)
		videos, err := client.Search(context.Background(), "calming breathing exercises")

		Expect(err).NotTo(HaveOccurred())
		Expect(gotQuery["part"]).To(Equal("snippet"))
		Expect(gotQuery["type"]).To(Equal("video"))
		Expect(gotQuery["maxResults"]).To(Equal("3"))
		Expect(gotQuery["q"]).To(Equal("calming breathing exercises"))
		Expect(gotQuery["key"]).To(Equal("yt-key"))

		Expect(videos).To(Equal([]model.Video{
			{
				ID:        "abc123",
				Title:     "Guided breathing",
				Thumbnail: "https://i.ytimg.com/vi/abc123/mqdefault.jpg",
				URL:       "https://www.youtube.com/watch?v=abc123",
			},
			{
				ID:        "def456",
				Title:     "Calming music",
				Thumbnail: "https://i.ytimg.com/vi/def456/default.jpg",
				URL:       "https://www.youtube.com/watch?v=def456",
			},
		}))
	})

	It("returns an empty slice when nothing matches", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		}

		client := youtube.NewClient("yt-key", server.URL, 3)
		videos, err := client.Search(context.Background(), "xyzzy")

		Expect(err).NotTo(HaveOccurred())
		Expect(videos).To(BeEmpty())
	})

	It("skips items without a video ID", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[
				{"id":{},"snippet":{"title":"channel result"}},
				{"id":{"videoId":"ok1"},"snippet":{"title":"real video"}}
			]}`))
		}

		client := youtube.NewClient("yt-key", server.URL, 3)
		videos, err := client.Search(context.Background(), "anything")

		Expect(err).NotTo(HaveOccurred())
		Expect(videos).To(HaveLen(1))
		Expect(videos[0].ID).To(Equal("ok1"))
	})

	It("surfaces upstream errors with the provider message", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"message":"quotaExceeded"}}`))
		}

		client := youtube.NewClient("yt-key", server.URL, 3)
		_, err := client.Search(context.Background(), "anything")

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("quotaExceeded"))
	})
})
