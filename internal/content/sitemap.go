package content

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Page is a public page listed in the sitemap
type Page struct {
	Path            string
	ChangeFrequency string
	Priority        float64
}

// Pages lists the public pages in sitemap order
var Pages = []Page{
	{Path: "/", ChangeFrequency: "daily", Priority: 1.0},
	{Path: "/practice", ChangeFrequency: "weekly", Priority: 0.9},
	{Path: "/study-guide", ChangeFrequency: "weekly", Priority: 0.8},
	{Path: "/about", ChangeFrequency: "monthly", Priority: 0.7},
	{Path: "/progress", ChangeFrequency: "daily", Priority: 0.6},
	{Path: "/auth/signin", ChangeFrequency: "monthly", Priority: 0.5},
	{Path: "/auth/signup", ChangeFrequency: "monthly", Priority: 0.5},
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemap renders the sitemap for baseURL with every page modified at lastMod
func WriteSitemap(w io.Writer, baseURL string, lastMod time.Time) error {
	baseURL = strings.TrimRight(baseURL, "/")

	set := urlSet{XMLNS: sitemapNS}
	for _, p := range Pages {
		loc := baseURL + p.Path
		if p.Path == "/" {
			loc = baseURL
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    lastMod.UTC().Format(time.RFC3339),
			ChangeFreq: p.ChangeFrequency,
			Priority:   fmt.Sprintf("%.1f", p.Priority),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return enc.Flush()
}
