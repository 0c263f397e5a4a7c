package showcase

import (
	"html/template"
	"io"
)

// Card is the view model for one rendered project. It carries the record id
// so the page's single delegated click handler can dispatch delete actions
// without ids baked into inline handlers.
type Card struct {
	RecordID     string
	Title        string
	Description  string
	Technologies []string
	Category     string
	DemoURL      string
	GithubURL    string
	ImageURL     string
}

// BuildCards maps records to cards in list order. It is pure: rendering
// decisions live here, never in the store.
func BuildCards(list []Record) []Card {
	cards := make([]Card, 0, len(list))
	for _, r := range list {
		cards = append(cards, Card{
			RecordID:     r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Technologies: r.Technologies,
			Category:     r.Category,
			DemoURL:      r.DemoURL,
			GithubURL:    r.GithubURL,
			ImageURL:     r.ImageURL,
		})
	}
	return cards
}

// PageData is everything the showcase page template consumes.
type PageData struct {
	Cards    []Card
	Category string
}

// RenderPage writes the showcase page for the given data.
func RenderPage(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}

var pageTmpl = template.Must(template.New("showcase").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Projects</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 960px; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
.card { border: 1px solid #ddd; border-radius: 8px; padding: 1rem; }
.card img { width: 100%; border-radius: 4px; }
.tag { display: inline-block; background: #eef; border-radius: 4px; padding: 0 .4rem; margin-right: .3rem; font-size: .8rem; }
</style>
</head>
<body>
<h1>Projects</h1>
<nav>
  <a href="/?category=all">All</a>
  {{if and .Category (ne .Category "all")}}<span> · showing: {{.Category}}</span>{{end}}
</nav>
<div class="grid" id="project-grid">
{{range .Cards}}
  <div class="card" data-id="{{.RecordID}}">
    <img src="{{.ImageURL}}" alt="{{.Title}}">
    <h2>{{.Title}}</h2>
    <p>{{.Description}}</p>
    <p>{{range .Technologies}}<span class="tag">{{.}}</span>{{end}}</p>
    <p><a href="/?category={{.Category}}">{{.Category}}</a></p>
    {{if .DemoURL}}<a href="{{.DemoURL}}">Demo</a>{{end}}
    {{if .GithubURL}}<a href="{{.GithubURL}}">Code</a>{{end}}
    <form method="post" action="/showcase/projects/{{.RecordID}}/delete">
      <button type="submit" data-delete="{{.RecordID}}">Delete</button>
    </form>
  </div>
{{end}}
</div>
<script>
// one delegated handler for every card's delete button
document.getElementById("project-grid").addEventListener("click", function (e) {
  var id = e.target.getAttribute("data-delete");
  if (id && !confirm("Delete this project?")) {
    e.preventDefault();
  }
});
</script>
</body>
</html>
`
