package controllers

import (
	"bytes"
	"errors"
	"html/template"

	"rooftop-server/repository"

	"github.com/gofiber/fiber/v2"
)

// Minimal server-rendered pages behind the subdomain rewrite; the real
// front end consumes the JSON API.
var feedTemplate = template.Must(template.New("feed").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>rooftop</title></head><body>
<h1>rooftop</h1>
{{range .}}<article>
<p>{{.Content}}</p>
{{range .Images}}<img src="{{.URL}}" alt="" loading="lazy">{{end}}
<footer><a href="/rooftop/p/{{.ID}}">{{.CreatedAt.Format "2006-01-02 15:04"}}</a>
 · {{.Likes}} likes · {{.Comments}} comments · {{.Shares}} shares</footer>
</article>{{end}}
</body></html>
`))

var noteTemplate = template.Must(template.New("note").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>rooftop</title></head><body>
<article>
<p>{{.Content}}</p>
{{range .Images}}<img src="{{.URL}}" alt="">{{end}}
<footer>{{.CreatedAt.Format "2006-01-02 15:04"}}
 · {{.Likes}} likes · {{.Comments}} comments · {{.Shares}} shares</footer>
</article>
<a href="/rooftop">back</a>
</body></html>
`))

var composeTemplate = template.Must(template.New("compose").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>rooftop · new</title></head><body>
<h1>new note</h1>
<form id="compose">
<textarea name="content" rows="6" required></textarea>
<textarea name="images" rows="3" placeholder="one image URL per line"></textarea>
<input name="token" type="password" placeholder="admin token" required>
<button type="submit">post</button>
</form>
<script>
document.getElementById("compose").addEventListener("submit", async (e) => {
  e.preventDefault();
  const form = e.target;
  const images = form.images.value.split("\n").map(s => s.trim()).filter(Boolean);
  const resp = await fetch("/api/notes", {
    method: "POST",
    headers: {
      "Content-Type": "application/json",
      "Authorization": "Bearer " + form.token.value,
    },
    body: JSON.stringify({content: form.content.value, images}),
  });
  if (resp.ok) {
    window.location.href = "/rooftop";
  } else {
    const data = await resp.json().catch(() => ({}));
    alert(data.error || resp.status);
  }
});
</script>
</body></html>
`))

type PageController struct {
	repo repository.NoteRepositoryInterface
}

func NewPageController(repo repository.NoteRepositoryInterface) *PageController {
	return &PageController{repo: repo}
}

func (pc *PageController) RenderFeed(c *fiber.Ctx) error {
	notes, err := pc.repo.FindNotes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch notes")
	}
	return renderHTML(c, feedTemplate, notes)
}

func (pc *PageController) RenderCompose(c *fiber.Ctx) error {
	return renderHTML(c, composeTemplate, nil)
}

func (pc *PageController) RenderNote(c *fiber.Ctx) error {
	note, err := pc.repo.FindNoteByID(c.Params("id"))
	if errors.Is(err, repository.ErrNoteNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch note")
	}
	return renderHTML(c, noteTemplate, note)
}

func renderHTML(c *fiber.Ctx, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render page")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
