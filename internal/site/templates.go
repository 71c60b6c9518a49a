package site

// pageTemplate is the shell shared by the hub index and every hub page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.StyleHref}}">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      {{if .LogoHref}}<a href="{{.HomeHref}}" class="sidebar-logo-link"><img src="{{.LogoHref}}" alt="{{.SiteTitle}}" class="sidebar-logo"></a>{{end}}
      <h2 class="project-title"><a href="{{.HomeHref}}">{{.SiteTitle}}</a></h2>
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <article class="page-content">
      {{if .Hub}}
      <header class="hub-header">
        <h1>{{.Hub.Title}}</h1>
        {{if .Hub.Tagline}}<p class="tagline">{{.Hub.Tagline}}</p>{{end}}
        <p class="hub-stats">{{.Stats.Entries}} resources in {{.Stats.Sections}} sections{{range .Stats.ByType}} <span class="badge type-{{.Type}}">{{.Count}} {{.Type}}</span>{{end}}</p>
      </header>
      <div id="hub" class="hub" data-mode="{{.Mode}}" data-ws="{{.WSURL}}" data-clear-on-section="{{.ClearOnSection}}">
        <form class="hub-search" method="get" action="">
          <input type="hidden" name="section" value="{{.State.SectionID}}">
          <input type="hidden" name="type" value="{{.State.Filter}}">
          <input type="search" id="hub-search-input" name="q" value="{{.State.Input}}" placeholder="Search this hub..." autocomplete="off">
          <button type="button" class="search-clear" data-event="clear">Clear</button>
        </form>
        <div id="hub-content">
          {{.Content}}
        </div>
      </div>
      {{else}}
      {{.Content}}
      {{end}}
    </article>
  </main>
  <script src="{{.ScriptHref}}"></script>
</body>
</html>`

// contentTemplate is the re-renderable region of a hub page. Live sessions
// receive it as a fragment after every event.
const contentTemplate = `<nav class="hub-tabs" role="tablist">
{{- range .Tabs}}
  <a class="hub-tab{{if .Active}} active{{end}}" role="tab" href="{{.Href}}" data-event="section" data-value="{{.Value}}">{{if .Icon}}<span class="tab-icon">{{.Icon}}</span> {{end}}{{.Label}} <span class="count">{{.Count}}</span></a>
{{- end}}
</nav>
{{if .Found}}
<section class="hub-section" id="section-{{.Section.ID}}">
  <h2>{{if .Section.Icon}}{{.Section.Icon}} {{end}}{{.Section.Label}}</h2>
  {{if .Intro}}<div class="section-intro">{{.Intro}}</div>{{end}}
  <div class="hub-filters">
  {{- range .Filters}}
    <a class="filter-btn{{if .Active}} active{{end}}" href="{{.Href}}" data-event="filter" data-value="{{.Value}}">{{.Label}} <span class="count">{{.Count}}</span></a>
  {{- end}}
  </div>
  <p class="result-count">Showing <span id="visible-count">{{.Visible}}</span> of {{.Total}} resources</p>
  {{range .Groups}}
  <div class="hub-group">
    <h3>{{.Title}}</h3>
    <div class="cards">
    {{- range .Cards}}
      <a class="card" href="{{.URL}}" target="_blank" rel="noopener" data-search="{{.Haystack}}">
        <div class="card-badges"><span class="badge type-{{.Type}}">{{.Type}}</span>{{if .Level}}<span class="badge level-{{.Level}}">{{.Level}}</span>{{end}}</div>
        <h4 class="card-title hl">{{.Title}}</h4>
        {{if .Author}}<p class="card-author hl">{{.Author}}</p>{{end}}
        {{if .Desc}}<p class="card-desc hl">{{.Desc}}</p>{{end}}
      </a>
    {{- end}}
    </div>
  </div>
  {{end}}
  <p class="empty-state"{{if .Groups}} hidden{{end}}>No resources match.</p>
</section>
{{else}}
<p class="empty-state">This section does not exist.</p>
{{end}}`

// indexTemplate lists every hub.
const indexTemplate = `<header class="hub-header">
  <h1>{{.SiteTitle}}</h1>
  <p class="hub-stats">{{len .Hubs}} hubs</p>
</header>
<div class="hub-list">
{{- range .Hubs}}
  <a class="hub-card" href="{{.Href}}">
    <h3>{{.Title}}</h3>
    {{if .Tagline}}<p>{{.Tagline}}</p>{{end}}
    <span class="count">{{.Entries}} resources, {{.Sections}} sections</span>
  </a>
{{- else}}
  <p class="empty-state">No hubs found.</p>
{{- end}}
</div>`

// cssContent is the stylesheet for served and built pages.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --mark: #ffec99;
  --sidebar-width: 260px;
  --content-max-width: 1100px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --mark: #5c4b12;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
  display: flex;
  min-height: 100vh;
}

a { color: var(--accent); }
[hidden], .hidden { display: none !important; }

/* ============ Sidebar ============ */
.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0; left: 0; bottom: 0;
  overflow-y: auto;
  z-index: 100;
}

.sidebar-header { padding: 20px 16px 12px; border-bottom: 1px solid var(--border); }
.sidebar-logo { max-width: 120px; margin-bottom: 8px; }
.project-title { font-size: 1.05rem; }
.project-title a { color: var(--text); text-decoration: none; }

.sidebar-tree ul { list-style: none; }
.sidebar-tree ul ul { padding-left: 12px; }
.sidebar-tree li a {
  display: block;
  padding: 4px 16px;
  font-size: 0.88rem;
  color: var(--text-secondary);
  text-decoration: none;
  border-radius: 4px;
}
.sidebar-tree li a:hover,
.sidebar-tree li a.active { background: var(--accent-light); color: var(--accent); }
.sidebar-tree .dir-toggle {
  display: block;
  padding: 4px 16px;
  font-size: 0.8rem;
  font-weight: 600;
  text-transform: uppercase;
  color: var(--text-muted);
  cursor: pointer;
}
.sidebar-tree .dir > ul { display: none; }
.sidebar-tree .dir.expanded > ul { display: block; }
.sidebar-tree .home-link a { font-weight: 600; color: var(--accent); }

.sidebar-overlay { display: none; }
.sidebar-overlay.visible {
  display: block;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.3);
  z-index: 90;
}

/* ============ Main Content ============ */
.content { margin-left: var(--sidebar-width); flex: 1; min-width: 0; }
.top-bar { display: flex; justify-content: flex-end; gap: 8px; padding: 12px 24px; }
.menu-toggle { display: none; margin-right: auto; }
.menu-toggle, .theme-toggle { background: none; border: none; color: var(--text-secondary); cursor: pointer; }
.page-content { max-width: var(--content-max-width); margin: 0 auto; padding: 8px 40px 64px; }

/* ============ Hub ============ */
.hub-header h1 { font-size: 2rem; line-height: 1.2; }
.tagline { color: var(--text-secondary); font-size: 1.1rem; }
.hub-stats { color: var(--text-muted); font-size: 0.9rem; margin: 8px 0 20px; }

.hub-search { display: flex; gap: 8px; margin-bottom: 16px; }
.hub-search input[type=search] {
  flex: 1;
  padding: 8px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  font-size: 0.95rem;
}
.search-clear {
  padding: 8px 14px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg-secondary);
  color: var(--text-secondary);
  cursor: pointer;
}

.hub-tabs { display: flex; flex-wrap: wrap; gap: 4px; border-bottom: 1px solid var(--border); margin-bottom: 20px; }
.hub-tab {
  padding: 8px 14px;
  color: var(--text-secondary);
  text-decoration: none;
  border-bottom: 2px solid transparent;
}
.hub-tab.active { color: var(--accent); border-bottom-color: var(--accent); font-weight: 600; }
.count { color: var(--text-muted); font-size: 0.8em; }

.section-intro { color: var(--text-secondary); margin: 8px 0 16px; }
.section-intro pre { overflow-x: auto; padding: 12px; border-radius: 6px; }

.hub-filters { display: flex; flex-wrap: wrap; gap: 6px; margin-bottom: 12px; }
.filter-btn {
  padding: 4px 12px;
  border: 1px solid var(--border);
  border-radius: 999px;
  font-size: 0.85rem;
  color: var(--text-secondary);
  text-decoration: none;
  text-transform: capitalize;
}
.filter-btn.active { background: var(--accent); border-color: var(--accent); color: #fff; }
.filter-btn.active .count { color: #fff; }

.result-count { color: var(--text-muted); font-size: 0.85rem; margin-bottom: 16px; }

.hub-group { margin-bottom: 28px; }
.hub-group h3 { font-size: 1.1rem; margin-bottom: 10px; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 12px; }
.card, .hub-card {
  display: block;
  padding: 14px 16px;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--bg-secondary);
  color: var(--text);
  text-decoration: none;
  box-shadow: var(--shadow);
  transition: box-shadow 0.15s;
}
.card:hover, .hub-card:hover { box-shadow: var(--shadow-lg); }
.card-title { font-size: 1rem; margin: 6px 0 2px; }
.card-author { color: var(--text-secondary); font-size: 0.85rem; }
.card-desc { color: var(--text-muted); font-size: 0.85rem; margin-top: 6px; }
.hub-list { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 16px; }

.badge {
  display: inline-block;
  padding: 1px 8px;
  margin-right: 4px;
  border-radius: 4px;
  font-size: 0.72rem;
  text-transform: uppercase;
  background: var(--accent-light);
  color: var(--accent);
}
.level-beginner { background: #d3f9d8; color: #2b8a3e; }
.level-intermediate { background: #fff3bf; color: #e67700; }
.level-advanced { background: #ffe3e3; color: #c92a2a; }

mark { background: var(--mark); color: inherit; border-radius: 2px; padding: 0 1px; }
.empty-state { color: var(--text-muted); padding: 24px 0; }

/* ============ Responsive ============ */
@media (max-width: 768px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.3s; }
  .sidebar.open { transform: translateX(0); box-shadow: var(--shadow-lg); }
  .content { margin-left: 0; }
  .menu-toggle { display: block; }
  .page-content { padding: 8px 16px 48px; }
}
`

// jsContent drives the theme, sidebar and hub interactions. A hub container
// in "live" mode forwards events over its WebSocket; in "static" mode search
// filters the pre-rendered cards in place.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  // ===== Theme toggle =====
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("refhub-theme", theme); } catch(e) {}
  }

  var stored = null;
  try { stored = localStorage.getItem("refhub-theme"); } catch(e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Sidebar toggle (mobile) =====
  var menuToggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function toggleSidebar() {
    sidebar.classList.toggle("open");
    overlay.classList.toggle("visible");
  }

  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", toggleSidebar);

  // ===== Directory tree toggle =====
  document.querySelectorAll(".dir-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      this.parentElement.classList.toggle("expanded");
    });
  });

  // ===== Hub =====
  var hub = document.getElementById("hub");
  if (!hub) return;

  var content = document.getElementById("hub-content");
  var input = document.getElementById("hub-search-input");
  var form = hub.querySelector("form.hub-search");
  var clearOnSection = hub.getAttribute("data-clear-on-section") === "true";

  form.addEventListener("submit", function(e) { e.preventDefault(); });

  function escapeHTML(s) {
    return s.replace(/&/g, "&amp;").replace(/</g, "&lt;").replace(/>/g, "&gt;")
      .replace(/"/g, "&quot;").replace(/'/g, "&#39;");
  }

  function escapeRegExp(s) {
    return s.replace(/[.*+?^${}()|[\]\\]/g, "\\$&");
  }

  if (hub.getAttribute("data-mode") === "live") {
    var socket = null;
    var pending = [];

    function syncState(state) {
      form.elements["section"].value = state.section;
      form.elements["type"].value = state.filter;
      if (document.activeElement !== input) input.value = state.input || "";
      var params = new URLSearchParams();
      params.set("section", state.section);
      if (state.filter && state.filter !== "all") params.set("type", state.filter);
      if (state.input) params.set("q", state.input);
      history.replaceState(null, "", location.pathname + "?" + params.toString());
    }

    function connect() {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      socket = new WebSocket(proto + location.host + hub.getAttribute("data-ws"));
      socket.onopen = function() {
        pending.forEach(function(m) { socket.send(m); });
        pending = [];
      };
      socket.onmessage = function(ev) {
        var msg = JSON.parse(ev.data);
        if (msg.type === "render") {
          content.innerHTML = msg.html;
          syncState(msg.render.state);
        }
      };
      socket.onclose = function() { socket = null; };
    }

    function send(event) {
      var data = JSON.stringify(event);
      if (socket && socket.readyState === WebSocket.OPEN) {
        socket.send(data);
        return;
      }
      pending.push(data);
      if (!socket) connect();
    }

    hub.addEventListener("click", function(e) {
      var target = e.target.closest("[data-event]");
      if (!target || !hub.contains(target)) return;
      e.preventDefault();
      var kind = target.getAttribute("data-event");
      if (kind === "clear") input.value = "";
      send({ kind: kind, value: target.getAttribute("data-value") || "" });
    });

    input.addEventListener("input", function() {
      send({ kind: "search", value: input.value });
    });

    connect();
    return;
  }

  // ===== Static search =====
  function highlight(card, query) {
    card.querySelectorAll(".hl").forEach(function(el) {
      if (!el.hasAttribute("data-raw")) el.setAttribute("data-raw", el.textContent);
      var raw = el.getAttribute("data-raw");
      if (query === "") {
        el.textContent = raw;
        return;
      }
      var re = new RegExp(escapeRegExp(query), "gi");
      var out = "";
      var last = 0;
      var m;
      while ((m = re.exec(raw)) !== null) {
        out += escapeHTML(raw.slice(last, m.index)) + "<mark>" + escapeHTML(m[0]) + "</mark>";
        last = m.index + m[0].length;
      }
      el.innerHTML = out + escapeHTML(raw.slice(last));
    });
  }

  function applySearch() {
    var query = input.value.trim().toLowerCase();
    var visible = 0;
    content.querySelectorAll(".hub-group").forEach(function(group) {
      var shown = 0;
      group.querySelectorAll(".card").forEach(function(card) {
        var match = query === "" || (card.getAttribute("data-search") || "").indexOf(query) !== -1;
        card.classList.toggle("hidden", !match);
        highlight(card, match ? query : "");
        if (match) shown++;
      });
      group.classList.toggle("hidden", shown === 0);
      visible += shown;
    });
    var counter = document.getElementById("visible-count");
    if (counter) counter.textContent = visible;
    var empty = content.querySelector(".hub-section .empty-state");
    if (empty) empty.hidden = visible !== 0;
  }

  hub.addEventListener("click", function(e) {
    var target = e.target.closest("[data-event]");
    if (!target || !hub.contains(target)) return;
    var kind = target.getAttribute("data-event");
    if (kind === "clear") {
      e.preventDefault();
      input.value = "";
      applySearch();
      return;
    }
    var keep = input.value.trim() !== "" && (kind === "filter" || !clearOnSection);
    if (keep && target.href) {
      e.preventDefault();
      location.href = target.href + "?q=" + encodeURIComponent(input.value);
    }
  });

  input.addEventListener("input", applySearch);

  var initial = new URLSearchParams(location.search).get("q");
  if (initial) input.value = initial;
  applySearch();
})();
`

// Asset returns a built-in static asset by file name.
func Asset(name string) (data []byte, contentType string, ok bool) {
	switch name {
	case "style.css":
		return []byte(cssContent), "text/css; charset=utf-8", true
	case "script.js":
		return []byte(jsContent), "text/javascript; charset=utf-8", true
	}
	return nil, "", false
}
