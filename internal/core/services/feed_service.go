package services

import (
	"bytes"
	"context"
	"strconv"
	"text/template"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/Masterminds/sprig"
)

const feedItemLimit = 50

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>{{ .Title | html }}</title>
    <link>{{ .Link | html }}</link>
    <description>{{ .Description | html }}</description>
    <lastBuildDate>{{ .BuildDate }}</lastBuildDate>
{{- range .Items }}
    <item>
      <title>{{ .Title | html }}</title>
      <link>{{ .Link | html }}</link>
      <guid isPermaLink="false">{{ .GUID }}</guid>
      <description>{{ abbrev 500 .Description | html }}</description>
{{- range .Categories }}
      <category>{{ . | html }}</category>
{{- end }}
      <pubDate>{{ .PubDate }}</pubDate>
    </item>
{{- end }}
  </channel>
</rss>
`

type FeedConfig struct {
	Title       string
	Link        string
	Description string
}

type feedItem struct {
	Title       string
	Link        string
	GUID        string
	Description string
	Categories  []string
	PubDate     string
}

type feedData struct {
	Title       string
	Link        string
	Description string
	BuildDate   string
	Items       []feedItem
}

// FeedService renders the public posts as an RSS 2.0 document.
type FeedService struct {
	store ports.PostStoreInterface
	cfg   FeedConfig
	tmpl  *template.Template
}

func NewFeedService(store ports.PostStoreInterface, cfg FeedConfig) *FeedService {
	tmpl := template.Must(template.New("feed").Funcs(sprig.TxtFuncMap()).Parse(feedTemplate))
	return &FeedService{
		store: store,
		cfg:   cfg,
		tmpl:  tmpl,
	}
}

func (f *FeedService) Render(ctx context.Context) (string, error) {
	posts, err := f.store.List(ctx, domain.PostFilter{
		Limit:    feedItemLimit,
		SortBy:   domain.PostSortCreatedAt,
		SortDesc: true,
	})
	if err != nil {
		return "", err
	}

	data := feedData{
		Title:       f.cfg.Title,
		Link:        f.cfg.Link,
		Description: f.cfg.Description,
		BuildDate:   time.Now().UTC().Format(time.RFC1123Z),
		Items:       make([]feedItem, 0, len(posts)),
	}

	for _, post := range posts {
		id := strconv.FormatInt(post.ID, 10)
		item := feedItem{
			Title:       post.Title,
			Link:        f.cfg.Link + "/posts/" + id,
			GUID:        "post-" + id,
			Description: post.Content,
			Categories:  post.Tags,
		}
		if !post.CreatedAt.IsZero() {
			item.PubDate = post.CreatedAt.UTC().Format(time.RFC1123Z)
		}
		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
