package primarium

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// GET /api/v1/settlements/:id/feed.xml
func (a *App) handleAPIFeed(c echo.Context) error {
	st, err := a.Store.GetSettlement(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return apiError(c, http.StatusNotFound, "settlement not found")
		}
		return err
	}
	posts, err := a.Cache.ListPosts(st.ID)
	if err != nil {
		return err
	}

	base := a.Config.APIBaseURL()
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := base + "/blog-posts/" + p.ID + "?settlement=" + st.ID
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Primăria " + st.Name,
			Link:        base + "/settlements/" + st.ID,
			Description: "Noutăți din " + st.Name + ", " + st.Region,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
