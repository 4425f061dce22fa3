package primarium

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/primarium/primarium/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	settlements, err := a.Store.ListSettlements()
	if err != nil {
		return err
	}
	items := make([]views.SettlementItem, 0, len(settlements))
	for _, s := range settlements {
		items = append(items, views.SettlementItem{
			ID: s.ID, Name: s.Name, Region: s.Region, Active: s.Active,
		})
	}
	return Render(c, views.AdminDashboard(items, msg, CsrfToken(c)))
}

func requireAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return nil
}

// formFloat parses a form field as float64, returning an HTTP 400 on bad input.
func formFloat(c echo.Context, field string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, field+" must be a number")
	}
	return v, nil
}

// --- settlements ---

func (a *App) handleSettlementCreate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	lat, err := formFloat(c, "lat")
	if err != nil {
		return err
	}
	lng, err := formFloat(c, "lng")
	if err != nil {
		return err
	}
	st, err := a.Store.CreateSettlement(Settlement{
		Name:   strings.TrimSpace(c.FormValue("name")),
		Region: strings.TrimSpace(c.FormValue("region")),
		Lat:    lat,
		Lng:    lng,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, st)
}

func (a *App) handleSettlementUpdate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, err := a.Store.GetSettlement(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "settlement not found")
		}
		return err
	}
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		st.Name = v
	}
	if v := strings.TrimSpace(c.FormValue("region")); v != "" {
		st.Region = v
	}
	if c.FormValue("lat") != "" {
		if st.Lat, err = formFloat(c, "lat"); err != nil {
			return err
		}
	}
	if c.FormValue("lng") != "" {
		if st.Lng, err = formFloat(c, "lng"); err != nil {
			return err
		}
	}
	if err := a.Store.UpdateSettlement(st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}

func (a *App) handleSettlementDelete(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	id := c.Param("id")
	if err := a.Store.DeleteSettlement(id); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "settlement not found")
		}
		return err
	}
	a.Cache.Invalidate(id)
	return c.NoContent(http.StatusNoContent)
}

// --- blog posts ---

func (a *App) handlePostList(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	posts, err := a.Store.ListPosts(c.Param("id"))
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	return c.JSON(http.StatusOK, posts)
}

func (a *App) handlePostCreate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	settlementID := c.Param("id")
	if _, err := a.Store.GetSettlement(settlementID); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "settlement not found")
		}
		return err
	}
	post, err := a.Store.CreatePost(BlogPost{
		SettlementID: settlementID,
		Title:        strings.TrimSpace(c.FormValue("title")),
		Description:  strings.TrimSpace(c.FormValue("description")),
		Content:      c.FormValue("content"),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.Cache.Invalidate(settlementID)
	return c.JSON(http.StatusCreated, post)
}

func (a *App) handlePostUpdate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	post, err := a.Store.GetPost(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return err
	}
	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		post.Title = v
	}
	if v := strings.TrimSpace(c.FormValue("description")); v != "" {
		post.Description = v
	}
	if v := c.FormValue("content"); v != "" {
		post.Content = v
	}
	if err := a.Store.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.Cache.Invalidate(post.SettlementID)
	return c.JSON(http.StatusOK, post)
}

func (a *App) handlePostDelete(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	post, err := a.Store.GetPost(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return err
	}
	if err := a.Store.DeletePost(post.ID); err != nil {
		return err
	}
	a.Cache.Invalidate(post.SettlementID)
	return c.NoContent(http.StatusNoContent)
}

// --- members ---

func (a *App) handleMemberList(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	members, err := a.Store.ListMembers(c.Param("id"))
	if err != nil {
		return err
	}
	if members == nil {
		members = []Member{}
	}
	return c.JSON(http.StatusOK, members)
}

func (a *App) handleMemberCreate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	settlementID := c.Param("id")
	if _, err := a.Store.GetSettlement(settlementID); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "settlement not found")
		}
		return err
	}
	m := Member{
		SettlementID: settlementID,
		FirstName:    strings.TrimSpace(c.FormValue("firstName")),
		LastName:     strings.TrimSpace(c.FormValue("lastName")),
		Position:     strings.TrimSpace(c.FormValue("position")),
		Description:  strings.TrimSpace(c.FormValue("description")),
	}
	photoPath, err := a.saveMemberPhoto(c, m.FirstName+"-"+m.LastName)
	if err != nil {
		return err
	}
	m.PhotoPath = photoPath
	m, err = a.Store.CreateMember(m)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (a *App) handleMemberUpdate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	m, err := a.Store.GetMember(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "member not found")
		}
		return err
	}
	if v := strings.TrimSpace(c.FormValue("firstName")); v != "" {
		m.FirstName = v
	}
	if v := strings.TrimSpace(c.FormValue("lastName")); v != "" {
		m.LastName = v
	}
	if v := strings.TrimSpace(c.FormValue("position")); v != "" {
		m.Position = v
	}
	if v := strings.TrimSpace(c.FormValue("description")); v != "" {
		m.Description = v
	}
	photoPath, err := a.saveMemberPhoto(c, m.FirstName+"-"+m.LastName)
	if err != nil {
		return err
	}
	if photoPath != "" {
		a.removeMemberPhoto(m.PhotoPath)
		m.PhotoPath = photoPath
	}
	if err := a.Store.UpdateMember(m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (a *App) handleMemberDelete(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	m, err := a.Store.GetMember(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "member not found")
		}
		return err
	}
	if err := a.Store.DeleteMember(m.ID); err != nil {
		return err
	}
	a.removeMemberPhoto(m.PhotoPath)
	return c.NoContent(http.StatusNoContent)
}

// --- coordinates ---

func (a *App) handleCoordinateList(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	coords, err := a.Store.ListCoordinates(c.Param("id"))
	if err != nil {
		return err
	}
	if coords == nil {
		coords = []Coordinate{}
	}
	return c.JSON(http.StatusOK, coords)
}

func (a *App) handleCoordinateCreate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	settlementID := c.Param("id")
	if _, err := a.Store.GetSettlement(settlementID); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "settlement not found")
		}
		return err
	}
	lat, err := formFloat(c, "lat")
	if err != nil {
		return err
	}
	lng, err := formFloat(c, "lng")
	if err != nil {
		return err
	}
	coord, err := a.Store.CreateCoordinate(Coordinate{
		SettlementID: settlementID,
		Name:         strings.TrimSpace(c.FormValue("name")),
		Lat:          lat,
		Lng:          lng,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, coord)
}

func (a *App) handleCoordinateUpdate(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	coord, err := a.Store.GetCoordinate(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "coordinate not found")
		}
		return err
	}
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		coord.Name = v
	}
	if c.FormValue("lat") != "" {
		if coord.Lat, err = formFloat(c, "lat"); err != nil {
			return err
		}
	}
	if c.FormValue("lng") != "" {
		if coord.Lng, err = formFloat(c, "lng"); err != nil {
			return err
		}
	}
	if err := a.Store.UpdateCoordinate(coord); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, coord)
}

func (a *App) handleCoordinateDelete(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	if err := a.Store.DeleteCoordinate(c.Param("id")); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "coordinate not found")
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
