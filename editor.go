package primarium

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/primarium/primarium/builder"
	"github.com/primarium/primarium/generator"
	"github.com/primarium/primarium/views"
)

// draftState is the JSON shape the editor frontend works with.
type draftState struct {
	Settlement Settlement          `json:"settlement"`
	Components []builder.Component `json:"components"`
	CustomCSS  string              `json:"customCss"`
}

// loadDraft returns the settlement and its current draft, seeding a fresh
// composition when none is stored yet. The seeded draft is not persisted
// until the first edit.
func (a *App) loadDraft(c echo.Context) (Settlement, *builder.List, string, error) {
	st, err := a.Store.GetSettlement(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return Settlement{}, nil, "", echo.NewHTTPError(http.StatusNotFound, "settlement not found")
		}
		return Settlement{}, nil, "", err
	}
	list, css, ok, err := a.Drafts.Load(st.ID)
	if err != nil {
		return Settlement{}, nil, "", err
	}
	if !ok {
		list = builder.Seed(st.Name)
		css = ""
	}
	return st, list, css, nil
}

func (a *App) saveDraft(st Settlement, list *builder.List, css string) error {
	return a.Drafts.Save(st.ID, list, css)
}

func (a *App) draftResponse(c echo.Context, st Settlement, list *builder.List, css string) error {
	return c.JSON(http.StatusOK, draftState{
		Settlement: st,
		Components: list.Components(),
		CustomCSS:  css,
	})
}

// editErrorStatus maps builder rule violations onto HTTP statuses. Rule
// violations are warnings the editor surfaces, not server faults.
func editErrorStatus(err error) error {
	switch {
	case errors.Is(err, builder.ErrComponentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, builder.ErrMandatoryComponent),
		errors.Is(err, builder.ErrSingletonComponent):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, builder.ErrUnknownType),
		errors.Is(err, builder.ErrContentMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

// GET /admin/editor/:id/
func (a *App) handleEditorPage(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	st, _, _, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	return Render(c, views.Editor(views.SettlementItem{
		ID: st.ID, Name: st.Name, Region: st.Region, Active: st.Active,
	}, CsrfToken(c)))
}

// GET /admin/editor/:id/draft
func (a *App) handleEditorDraft(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	return a.draftResponse(c, st, list, css)
}

// POST /admin/editor/:id/components  {"type":"hero"}
func (a *App) handleComponentAdd(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	var req struct {
		Type builder.Type `json:"type"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	if _, err := list.Add(req.Type); err != nil {
		return editErrorStatus(err)
	}
	if err := a.saveDraft(st, list, css); err != nil {
		return err
	}
	return a.draftResponse(c, st, list, css)
}

// DELETE /admin/editor/:id/components/:cid
func (a *App) handleComponentDelete(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	if err := list.Delete(c.Param("cid")); err != nil {
		return editErrorStatus(err)
	}
	if err := a.saveDraft(st, list, css); err != nil {
		return err
	}
	return a.draftResponse(c, st, list, css)
}

// POST /admin/editor/:id/components/:cid/move  {"direction":"up"}
func (a *App) handleComponentMove(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	var dir builder.Direction
	switch req.Direction {
	case "up":
		dir = builder.MoveUp
	case "down":
		dir = builder.MoveDown
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "direction must be up or down")
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	if err := list.Move(c.Param("cid"), dir); err != nil {
		return editErrorStatus(err)
	}
	if err := a.saveDraft(st, list, css); err != nil {
		return err
	}
	return a.draftResponse(c, st, list, css)
}

// POST /admin/editor/:id/components/:cid/alignment  {"alignment":"center"}
func (a *App) handleComponentAlignment(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	var req struct {
		Alignment builder.Alignment `json:"alignment"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if !req.Alignment.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "alignment must be left, center, or right")
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	if err := list.SetAlignment(c.Param("cid"), req.Alignment); err != nil {
		return editErrorStatus(err)
	}
	if err := a.saveDraft(st, list, css); err != nil {
		return err
	}
	return a.draftResponse(c, st, list, css)
}

// PATCH /admin/editor/:id/components/:cid/content
// The body is the content variant for the component's type.
func (a *App) handleComponentContent(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	cmp, ok := list.Get(c.Param("cid"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "component not found")
	}
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<20))
	if err != nil {
		return err
	}
	content, err := builder.DecodeContent(cmp.Type, body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := list.SetContent(cmp.ID, content); err != nil {
		return editErrorStatus(err)
	}
	if err := a.saveDraft(st, list, css); err != nil {
		return err
	}
	return a.draftResponse(c, st, list, css)
}

// POST /admin/editor/:id/css  {"customCss":"body { ... }"}
func (a *App) handleEditorCSS(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	var req struct {
		CustomCSS string `json:"customCss"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	st, list, _, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	if err := a.saveDraft(st, list, req.CustomCSS); err != nil {
		return err
	}
	return a.draftResponse(c, st, list, req.CustomCSS)
}

// POST /admin/editor/:id/reset
// Drops the draft so the next load reseeds the default composition.
func (a *App) handleEditorReset(c echo.Context) error {
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
	if err := a.Drafts.Clear(st.ID); err != nil {
		return err
	}
	return a.draftResponse(c, st, builder.Seed(st.Name), "")
}

// generateBundle renders the current draft into a deployable file set.
func (a *App) generateBundle(st Settlement, list *builder.List, css string) (generator.Bundle, error) {
	posts, err := a.Store.ListPosts(st.ID)
	if err != nil {
		return generator.Bundle{}, err
	}
	gposts := make([]generator.Post, 0, len(posts))
	for _, p := range posts {
		gposts = append(gposts, generator.Post{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Content:     p.Content,
			Date:        p.Date,
		})
	}
	bundle := generator.Generate(generator.Input{
		Site: generator.Site{
			ID:         st.ID,
			Name:       st.Name,
			Region:     st.Region,
			Lat:        st.Lat,
			Lng:        st.Lng,
			APIBaseURL: a.Config.APIBaseURL(),
		},
		Components: list.Components(),
		Posts:      gposts,
		CustomCSS:  css,
		Now:        time.Now(),
	})
	return bundle, nil
}

// GET /admin/editor/:id/code
func (a *App) handleEditorCode(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	bundle, err := a.generateBundle(st, list, css)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bundle.Files())
}

// GET /admin/editor/:id/preview?mode=desktop
func (a *App) handleEditorPreview(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	mode := generator.PreviewMode(c.QueryParam("mode"))
	if mode == "" {
		mode = generator.PreviewDesktop
	}
	if !mode.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "mode must be desktop, tablet, or mobile")
	}
	posts, err := a.Store.ListPosts(st.ID)
	if err != nil {
		return err
	}
	gposts := make([]generator.Post, 0, len(posts))
	for _, p := range posts {
		gposts = append(gposts, generator.Post{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Content:     p.Content,
			Date:        p.Date,
		})
	}
	html := generator.RenderPreview(generator.Input{
		Site: generator.Site{
			ID:     st.ID,
			Name:   st.Name,
			Region: st.Region,
			Lat:    st.Lat,
			Lng:    st.Lng,
		},
		Components: list.Components(),
		Posts:      gposts,
		CustomCSS:  css,
		Now:        time.Now(),
	}, mode)
	return c.HTML(http.StatusOK, html)
}

// POST /admin/editor/:id/publish
// Generates the bundle and ships it through the matching n8n workflow:
// create for a settlement that has never been published, update otherwise.
// The active flag flips only after the workflow confirms success.
func (a *App) handleEditorPublish(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	st, list, css, err := a.loadDraft(c)
	if err != nil {
		return err
	}
	if len(list.Components()) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to publish: the page has no components")
	}
	bundle, err := a.generateBundle(st, list, css)
	if err != nil {
		return err
	}

	action := "update"
	publish := a.publisher.UpdateSite
	if !st.Active {
		action = "create"
		publish = a.publisher.CreateSite
	}

	if err := publish(c.Request().Context(), st, bundle.Files()); err != nil {
		_ = a.Store.LogPublish(PublishRecord{
			SettlementID: st.ID,
			Action:       action,
			Status:       "error",
			Detail:       err.Error(),
		})
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	if !st.Active {
		if err := a.Store.SetSettlementActive(st.ID, true); err != nil {
			return err
		}
		st.Active = true
	}
	if err := a.Store.LogPublish(PublishRecord{
		SettlementID: st.ID,
		Action:       action,
		Status:       "success",
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "success",
		"action":     action,
		"bundle":     BundleName(st),
		"settlement": st,
	})
}

// GET /admin/editor/:id/publish-log
func (a *App) handleEditorPublishLog(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	records, err := a.Store.ListPublishLog(c.Param("id"), 20)
	if err != nil {
		return err
	}
	if records == nil {
		records = []PublishRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
