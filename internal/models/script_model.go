package models

// Script is the structured content for one short-form video.
type Script struct {
	Hook         string   `json:"hook"`
	Content      string   `json:"content"`
	CTA          string   `json:"cta"`
	FullScript   string   `json:"fullScript"`
	Visuals      []string `json:"visuals"`
	TextOverlays []string `json:"textOverlays"`
	Captions     string   `json:"captions"`
	Keywords     []string `json:"keywords"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
}
