package primarium

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primarium/primarium/views"
)

// apiEnvelope is the response shape the generated site scripts expect:
// the post list sits at payload.data.data.
type apiEnvelope struct {
	Status string  `json:"status"`
	Data   apiData `json:"data"`
}

type apiData struct {
	Data any `json:"data"`
}

func apiOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, apiEnvelope{Status: "success", Data: apiData{Data: data}})
}

func apiError(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"status": "error", "message": msg})
}

// GET /api/v1/blog-posts?settlement=ID
func (a *App) handleAPIListPosts(c echo.Context) error {
	settlementID := c.QueryParam("settlement")
	if settlementID == "" {
		return apiError(c, http.StatusBadRequest, "settlement parameter is required")
	}
	posts, err := a.Cache.ListPosts(settlementID)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	return apiOK(c, posts)
}

// GET /api/v1/blog-posts/:id?settlement=ID
func (a *App) handleAPIGetPost(c echo.Context) error {
	settlementID := c.QueryParam("settlement")
	var post BlogPost
	var err error
	if settlementID != "" {
		post, err = a.Cache.GetPost(settlementID, c.Param("id"))
	} else {
		post, err = a.Store.GetPost(c.Param("id"))
	}
	if err != nil {
		if err == ErrNotFound {
			return apiError(c, http.StatusNotFound, "post not found")
		}
		return err
	}
	return apiOK(c, post)
}

// GET /api/v1/settlements/:id
func (a *App) handleAPIGetSettlement(c echo.Context) error {
	st, err := a.Store.GetSettlement(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return apiError(c, http.StatusNotFound, "settlement not found")
		}
		return err
	}
	members, err := a.Store.ListMembers(st.ID)
	if err != nil {
		return err
	}
	coords, err := a.Store.ListCoordinates(st.ID)
	if err != nil {
		return err
	}
	if members == nil {
		members = []Member{}
	}
	if coords == nil {
		coords = []Coordinate{}
	}
	return apiOK(c, map[string]any{
		"settlement":  st,
		"members":     members,
		"coordinates": coords,
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if isPublicAPI(c) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code >= 500 {
			c.Logger().Errorf("server error: %v", err)
			_ = apiError(c, code, "internal error")
			return
		}
		_ = apiError(c, code, http.StatusText(code))
		return
	}
	if isEditorJSON(c) {
		// editor.js surfaces the message field in its alerts; HTTPError
		// messages are handler-chosen and safe to pass through.
		if he, ok := err.(*echo.HTTPError); ok {
			_ = c.JSON(he.Code, map[string]string{"message": fmt.Sprintf("%v", he.Message)})
			return
		}
		c.Logger().Errorf("server error: %v", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
