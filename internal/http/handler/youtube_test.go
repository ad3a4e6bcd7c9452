package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"youmatter.app/server/internal/http/dto"
	"youmatter.app/server/internal/http/handler"
	"youmatter.app/server/internal/model"
)

var _ = Describe("VideoHandler", func() {
	var (
		router   *gin.Engine
		searcher *mockSearcher
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		searcher = &mockSearcher{}
		h := handler.NewVideoHandler(searcher)
		router.POST("/youtube", h.Search)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/youtube", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns the videos the searcher found", func() {
		searcher.searchFn = func(_ context.Context, query string) ([]model.Video, error) {
			Expect(query).To(Equal("guided meditation"))
			return []model.Video{
				{ID: "abc123", Title: "10 Minute Meditation", URL: "https://www.youtube.com/watch?v=abc123"},
			}, nil
		}

		w := post(`{"query":"guided meditation"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp dto.VideoSearchResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Videos).To(HaveLen(1))
		Expect(resp.Videos[0].ID).To(Equal("abc123"))
	})

	It("returns an empty array when nothing matched", func() {
		w := post(`{"query":"zzzz"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"videos":[]`))
	})

	It("returns 400 when the query is missing", func() {
		Expect(post(`{}`).Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 502 when the search fails", func() {
		searcher.searchFn = func(_ context.Context, _ string) ([]model.Video, error) {
			return nil, errors.New("quota exceeded")
		}

		Expect(post(`{"query":"calm"}`).Code).To(Equal(http.StatusBadGateway))
	})
})
