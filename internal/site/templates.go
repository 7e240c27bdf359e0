package site

// pageTemplate is the Go html/template for each exported page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteTitle}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="sidebar">
    <div class="sidebar-header">
      <h2 class="site-title"><a href="index.html">{{.SiteTitle}}</a></h2>
    </div>
    <div class="sidebar-nav">
      {{.NavHTML}}
    </div>
  </nav>
  <main class="content">
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
</body>
</html>`

// cssContent is the CSS for the exported site.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d8dee4;
  --link: #0969da;
  --sidebar-bg: #f6f8fa;
  --accent: #f0e7d8;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: Georgia, 'Times New Roman', serif;
  color: var(--fg);
  background: var(--bg);
  display: flex;
  min-height: 100vh;
}

.sidebar {
  width: 260px;
  flex-shrink: 0;
  background: var(--sidebar-bg);
  border-right: 1px solid var(--border);
  padding: 1rem;
  overflow-y: auto;
  position: sticky;
  top: 0;
  height: 100vh;
  font-family: -apple-system, 'Segoe UI', sans-serif;
  font-size: 0.85rem;
}

.site-title { margin: 0 0 1rem; font-size: 1.1rem; }
.site-title a { color: var(--fg); text-decoration: none; }

.sidebar-nav ul { list-style: none; padding-left: 0.5rem; margin: 0.25rem 0; }
.sidebar-nav li { margin: 0.15rem 0; }
.sidebar-nav a { color: var(--fg); text-decoration: none; }
.sidebar-nav a:hover { color: var(--link); }
.nav-group-label {
  display: block;
  margin-top: 0.75rem;
  font-weight: 600;
  font-size: 0.75rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--muted);
}

.content { flex: 1; padding: 2rem 3rem; max-width: 900px; }

.page-content h1 {
  border-bottom: 1px solid var(--border);
  padding-bottom: 0.3rem;
}
.page-content h2 {
  border-bottom: 1px solid var(--border);
  padding-bottom: 0.2rem;
  margin-top: 2rem;
}
.page-content a { color: var(--link); }
.page-content em { color: var(--muted); }

.page-content table {
  border-collapse: collapse;
  margin: 1rem 0;
}
.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 0.35rem 0.75rem;
  text-align: left;
}
.page-content th { background: var(--sidebar-bg); }

.page-content img {
  max-width: 100%;
  border: 1px solid var(--border);
  border-radius: 4px;
}

.page-content hr {
  border: none;
  border-top: 1px solid var(--border);
  margin: 2rem 0 1rem;
}

@media (max-width: 720px) {
  body { flex-direction: column; }
  .sidebar { width: 100%; height: auto; position: static; }
  .content { padding: 1rem; }
}
`
