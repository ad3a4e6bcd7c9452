package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"youmatter.app/server/internal/http/handler"
	"youmatter.app/server/internal/http/middleware"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/service"
)

var _ = Describe("AuthHandler", func() {
	const siteURL = "https://youmatter.example.com"

	var (
		router *gin.Engine
		auth   *mockAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		auth = &mockAuthService{}
		h := handler.NewAuthHandler(auth, siteURL, false)
		router.GET("/auth/login", h.Login)
		router.GET("/auth/callback", h.Callback)
		router.POST("/auth/logout", h.Logout)
		router.GET("/auth/me", h.Me)
	})

	Describe("Login", func() {
		It("sets a state cookie and redirects to the authorization URL", func() {
			auth.getAuthorizationURLFn = func(state string) (string, error) {
				Expect(state).NotTo(BeEmpty())
				return "https://auth.workos.com/authorize?state=" + state, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(HavePrefix("https://auth.workos.com/authorize"))

			cookies := w.Result().Cookies()
			var found bool
			for _, ck := range cookies {
				if ck.Name == "youmatter_oauth_state" {
					found = true
					Expect(ck.Value).NotTo(BeEmpty())
					Expect(ck.HttpOnly).To(BeTrue())
				}
			}
			Expect(found).To(BeTrue())
		})
	})

	Describe("Callback", func() {
		callback := func(query string, stateCookie string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/auth/callback"+query, nil)
			if stateCookie != "" {
				req.AddCookie(&http.Cookie{Name: "youmatter_oauth_state", Value: stateCookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("exchanges the code, sets the session cookie, and redirects to the hub", func() {
			auth.handleCallbackFn = func(_ context.Context, code string) (*model.User, *model.Session, error) {
				Expect(code).To(Equal("workos-code"))
				return &model.User{ID: 42, Email: "priya@example.com"},
					&model.Session{ID: 777, UserID: 42}, nil
			}

			w := callback("?code=workos-code&state=xyz", "xyz")

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(Equal(siteURL + "/my-wellness-hub"))

			var session *http.Cookie
			for _, ck := range w.Result().Cookies() {
				if ck.Name == middleware.SessionCookieName {
					session = ck
				}
			}
			Expect(session).NotTo(BeNil())
			Expect(session.Value).To(Equal("777"))
			Expect(session.HttpOnly).To(BeTrue())
		})

		It("redirects with an error when the provider reports one", func() {
			w := callback("?error=access_denied", "")
			Expect(w.Header().Get("Location")).To(Equal(siteURL + "?auth_error=access_denied"))
		})

		It("redirects with an error on state mismatch", func() {
			w := callback("?code=abc&state=tampered", "original")
			Expect(w.Header().Get("Location")).To(Equal(siteURL + "?auth_error=invalid_state"))
		})

		It("redirects with an error when the code is missing", func() {
			w := callback("?state=xyz", "xyz")
			Expect(w.Header().Get("Location")).To(Equal(siteURL + "?auth_error=no_code"))
		})

		It("redirects with an error when the code exchange fails", func() {
			auth.handleCallbackFn = func(_ context.Context, _ string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrInvalidCode
			}

			w := callback("?code=bad&state=xyz", "xyz")
			Expect(w.Header().Get("Location")).To(Equal(siteURL + "?auth_error=invalid_code"))
		})
	})

	Describe("Logout", func() {
		It("deletes the session and clears the cookie", func() {
			var deleted int64
			auth.logoutFn = func(_ context.Context, sessionID int64) error {
				deleted = sessionID
				return nil
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "777"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(deleted).To(Equal(int64(777)))

			var session *http.Cookie
			for _, ck := range w.Result().Cookies() {
				if ck.Name == middleware.SessionCookieName {
					session = ck
				}
			}
			Expect(session).NotTo(BeNil())
			Expect(session.MaxAge).To(BeNumerically("<", 0))
		})

		It("still succeeds without a session cookie", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Me", func() {
		It("returns the current user", func() {
			auth.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, error) {
				Expect(sessionID).To(Equal(int64(777)))
				return &model.User{ID: 42, Name: "Priya", Email: "priya@example.com"}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "777"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("priya@example.com"))
		})

		It("returns 401 without a cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 and clears the cookie when the session expired", func() {
			auth.validateSessionFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, service.ErrSessionExpired
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "777"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
