package site

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #f8fafc;
  --card: #ffffff;
  --text: #0f172a;
  --muted: #64748b;
  --border: #e2e8f0;
  --primary: #6366f1;
  --primary-light: #818cf8;
  --secondary: #14b8a6;
  --accent: #f59e0b;
  --danger: #dc2626;
  --warning: #ca8a04;
  --success: #16a34a;
  --radius: 14px;
  --shadow: 0 4px 16px rgba(15, 23, 42, 0.08);
}

* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}
a { color: var(--primary); text-decoration: none; }
h1, h2, h3 { line-height: 1.2; margin: 0 0 0.5rem; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.muted { color: var(--muted); }

/* ============ Navbar ============ */
.navbar { position: sticky; top: 0; z-index: 10; background: rgba(255,255,255,0.95); border-bottom: 1px solid var(--border); }
.navbar-inner { display: flex; align-items: center; justify-content: space-between; height: 64px; flex-wrap: wrap; }
.brand { font-weight: 700; font-size: 1.25rem; color: var(--text); }
.brand-mark { color: var(--primary); }
.nav-links { display: flex; align-items: center; gap: 1.25rem; }
.nav-links a { color: var(--muted); font-weight: 500; }
.nav-links a.active, .nav-links a:hover { color: var(--primary); }
.nav-ctas { display: flex; gap: 0.5rem; }
.nav-ctas a.btn-primary, .nav-ctas a.btn-primary.active { color: #fff; }
.nav-toggle, .nav-toggle-label { display: none; }

@media (max-width: 960px) {
  .nav-toggle-label { display: block; font-size: 1.5rem; cursor: pointer; }
  .nav-links { display: none; flex-direction: column; align-items: flex-start; width: 100%; padding: 1rem 0; }
  .nav-toggle:checked ~ .nav-links { display: flex; }
  .nav-ctas { flex-direction: column; width: 100%; }
}

/* ============ Buttons, badges, notices ============ */
.btn { display: inline-block; padding: 0.6rem 1.2rem; border-radius: 10px; font-weight: 600; border: 1px solid transparent; cursor: pointer; font-size: 0.95rem; text-align: center; }
.btn-primary { background: linear-gradient(90deg, var(--primary), var(--secondary)); color: #fff; }
.btn-outline { border-color: var(--border); background: var(--card); color: var(--text); }
.btn-danger { background: var(--danger); color: #fff; }
.btn-sm { padding: 0.4rem 0.8rem; font-size: 0.85rem; }
.btn-block { display: block; width: 100%; }
.actions { display: flex; gap: 1rem; flex-wrap: wrap; margin-top: 1.5rem; justify-content: center; }
.badge { display: inline-block; padding: 0.15rem 0.6rem; border-radius: 999px; font-size: 0.75rem; font-weight: 600; background: rgba(99,102,241,0.12); color: var(--primary); margin: 0 0.25rem 0.25rem 0; }
.badge-outline { background: transparent; border: 1px solid var(--border); color: var(--muted); }
.badge-production { background: var(--primary); color: #fff; }
.badge-certified, .badge-danger { background: var(--danger); color: #fff; }
.badge-alternative, .badge-secondary { background: rgba(20,184,166,0.15); color: var(--secondary); }
.notice { margin: 1.5rem 0; padding: 1rem 1.25rem; border-radius: var(--radius); border: 1px solid var(--border); background: var(--card); box-shadow: var(--shadow); }
.notice p { margin: 0.25rem 0 0; }
.notice-destructive { border-color: var(--danger); background: #fef2f2; }
.notice-warning { border-color: var(--warning); background: #fefce8; }
.notice-default { border-color: var(--success); background: #f0fdf4; }

/* ============ Layout blocks ============ */
.hero { padding: 5rem 0 4rem; text-align: center; background: linear-gradient(135deg, rgba(99,102,241,0.12), rgba(20,184,166,0.12)); }
.hero-compact { padding: 3rem 0 2rem; }
.hero h1 { font-size: clamp(2rem, 5vw, 3.25rem); }
.highlight { background: linear-gradient(90deg, var(--primary), var(--secondary)); -webkit-background-clip: text; background-clip: text; color: transparent; }
.lead { font-size: 1.2rem; color: var(--muted); max-width: 760px; margin: 1rem auto 0; }
.section { padding: 3.5rem 0; }
.section-head { text-align: center; max-width: 760px; margin: 0 auto 2.5rem; }
.section-head h2 { font-size: 2rem; }
.section-head p { color: var(--muted); }
.grid { display: grid; gap: 1.5rem; }
.grid-2 { grid-template-columns: repeat(auto-fit, minmax(320px, 1fr)); }
.grid-3 { grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
.grid-4 { grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); }
.grid-auto { grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); }
.card { background: var(--card); border-radius: var(--radius); box-shadow: var(--shadow); padding: 1.5rem; }
.card-top { display: flex; justify-content: space-between; align-items: center; gap: 0.5rem; }
.card-danger { border: 1px solid rgba(220,38,38,0.3); }
.card-note { font-weight: 600; color: var(--primary); }
.icon { font-size: 2rem; margin-bottom: 0.75rem; }
.stat { text-align: center; }
.stat-value { font-size: 2.25rem; font-weight: 800; color: var(--primary); }
.stat-label { font-weight: 600; }
.points { padding-left: 1.1rem; color: var(--muted); }
.points.check { list-style: "✓  "; }
.points.star { list-style: "★  "; }
.points.trend { list-style: "↗  "; }
.steps { list-style: none; padding: 0; display: grid; gap: 1.5rem; }
.step { display: flex; gap: 1.5rem; }
.step-number { font-size: 2rem; font-weight: 800; color: var(--primary); min-width: 3rem; }
.testimonial blockquote { font-style: italic; margin: 0.75rem 0; }
.stars { color: #facc15; letter-spacing: 2px; }
.case-study blockquote { border-left: 3px solid var(--primary); padding-left: 1rem; margin: 1rem 0; font-style: italic; }
.goals { display: grid; gap: 1rem; max-width: 860px; margin: 0 auto; }
.progress { height: 12px; background: var(--border); border-radius: 999px; overflow: hidden; margin-top: 0.75rem; }
.progress span { display: block; height: 100%; background: linear-gradient(90deg, var(--primary), var(--secondary)); }
.roadmap { display: grid; gap: 1.5rem; }
.roadmap-item { display: grid; grid-template-columns: 160px 1fr 160px; gap: 1.5rem; }
.innovation { text-align: center; }
.tech-list { list-style: none; padding: 0; }
.tech-list li { padding: 0.6rem 0; border-bottom: 1px solid var(--border); }
.tech-list p { margin: 0.2rem 0 0; font-size: 0.9rem; }
.defs dt { font-weight: 600; }
.defs dd { margin: 0 0 0.6rem; color: var(--muted); }
.contact-method { display: flex; gap: 1rem; }
.contact-value { font-weight: 600; color: var(--primary); margin: 0; }
.hours { width: 100%; }
.hours td { padding: 0.4rem 0; }
.prose { max-width: 760px; margin: 0 auto; }
.prose pre { padding: 1rem; border-radius: 10px; overflow-x: auto; }
.cta { text-align: center; padding: 3rem 1.5rem; border-radius: 24px; background: linear-gradient(135deg, rgba(99,102,241,0.1), rgba(20,184,166,0.1)); }
.not-found { min-height: 50vh; }
.not-found h1 { font-size: 4rem; }

/* ============ Forms ============ */
.form label, .mood-form label { display: block; font-weight: 500; margin-bottom: 1rem; }
input, select, textarea { width: 100%; padding: 0.6rem 0.75rem; border: 1px solid var(--border); border-radius: 10px; font: inherit; margin-top: 0.35rem; background: #fff; }
.form-row { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
.mood-levels { display: grid; grid-template-columns: repeat(5, 1fr); gap: 0.75rem; }
.mood-level { text-align: center; border: 2px solid transparent; border-radius: var(--radius); padding: 1rem 0.25rem; background: var(--bg); cursor: pointer; }
.mood-level input, .emotion input { display: none; }
.mood-level:has(input:checked) { border-color: var(--primary); background: rgba(99,102,241,0.08); }
.mood-level .emoji { display: block; font-size: 2rem; }
.emotions { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.emotion span { display: inline-block; padding: 0.4rem 0.8rem; border-radius: 999px; border: 1px solid var(--border); cursor: pointer; }
.emotion input:checked + span { background: var(--primary); color: #fff; border-color: var(--primary); }
.mood-form .card, .sidebar .card { margin-bottom: 1.5rem; }
.mood-layout, .chat-layout { display: grid; grid-template-columns: 2fr 1fr; gap: 2rem; }
.entry { padding: 0.75rem 0; border-bottom: 1px solid var(--border); }
.trend-improving { color: var(--success); }
.trend-declining { color: var(--danger); }
.trend-stable { color: var(--primary); }
.trend-neutral { color: var(--muted); }

/* ============ Chat ============ */
.chat { display: flex; flex-direction: column; height: 640px; padding: 0; }
.chat-header { display: flex; justify-content: space-between; align-items: center; padding: 1rem 1.5rem; border-bottom: 1px solid var(--border); }
.chat-header p { margin: 0; font-size: 0.85rem; }
.chat-messages { flex: 1; overflow-y: auto; padding: 1.5rem; display: flex; flex-direction: column; gap: 0.75rem; }
.msg { max-width: 75%; padding: 0.6rem 1rem; border-radius: 16px; background: var(--bg); }
.msg p { margin: 0.2rem 0; }
.msg time { font-size: 0.7rem; color: var(--muted); }
.msg-user { align-self: flex-end; background: var(--primary); color: #fff; }
.msg-user time { color: rgba(255,255,255,0.75); }
.msg-bot.msg-crisis { border: 1px solid rgba(220,38,38,0.3); background: #fef2f2; }
.msg-bot.msg-suggestion { border: 1px solid rgba(20,184,166,0.3); background: #f0fdfa; }
.typing { padding: 0 1.5rem 0.5rem; }
.typing span { display: inline-block; width: 8px; height: 8px; margin-right: 4px; border-radius: 50%; background: var(--muted); animation: blink 1.2s infinite; }
.typing span:nth-child(2) { animation-delay: 0.2s; }
.typing span:nth-child(3) { animation-delay: 0.4s; }
@keyframes blink { 0%, 80%, 100% { opacity: 0.2; } 40% { opacity: 1; } }
.chat-input { display: flex; gap: 0.5rem; padding: 1rem 1.5rem; border-top: 1px solid var(--border); }
.chat-input input { margin: 0; }
.quick { margin-bottom: 0.5rem; }

/* ============ Footer ============ */
.footer { background: #0f172a; color: #cbd5e1; padding: 3rem 0 1.5rem; margin-top: 3rem; }
.footer .brand { color: #fff; }
.footer-inner { display: flex; justify-content: space-between; gap: 2rem; flex-wrap: wrap; }
.footer-links { display: grid; grid-template-columns: repeat(2, auto); gap: 0.4rem 2rem; }
.footer a { color: #cbd5e1; }
.footer-bottom { display: flex; justify-content: space-between; flex-wrap: wrap; gap: 1rem; border-top: 1px solid #1e293b; margin-top: 2rem; padding-top: 1.5rem; font-size: 0.85rem; }
.footer-bottom a { margin-left: 1rem; }

@media (max-width: 860px) {
  .mood-layout, .chat-layout, .form-row, .roadmap-item { grid-template-columns: 1fr; }
  .mood-levels { grid-template-columns: repeat(3, 1fr); }
}
`

// jsContent upgrades the chat page to the websocket transport.
const jsContent = `(function() {
  var chat = document.getElementById("chat");
  if (!chat || !window.WebSocket) return;

  var list = document.getElementById("chat-messages");
  var typing = document.getElementById("chat-typing");
  var form = document.getElementById("chat-form");
  var input = document.getElementById("chat-text");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws/chat");
  var open = false;

  function render(msg) {
    var el = document.createElement("div");
    el.className = "msg msg-" + msg.sender + " msg-" + msg.kind;
    if (msg.kind === "crisis") {
      el.innerHTML = '<span class="badge badge-danger">Crisis Support</span>';
    } else if (msg.kind === "suggestion" && msg.sender === "bot") {
      el.innerHTML = '<span class="badge badge-secondary">Coping Strategy</span>';
    }
    var p = document.createElement("p");
    p.textContent = msg.text;
    el.appendChild(p);
    var t = document.createElement("time");
    var d = new Date(msg.timestamp);
    t.textContent = d.toLocaleTimeString([], { hour: "2-digit", minute: "2-digit" });
    el.appendChild(t);
    list.appendChild(el);
    list.scrollTop = list.scrollHeight;
  }

  function send(text) {
    if (!open || !text.trim()) return false;
    ws.send(JSON.stringify({ type: "message", text: text }));
    return true;
  }

  ws.onopen = function() { open = true; };
  ws.onclose = function() { open = false; typing.hidden = true; };
  ws.onmessage = function(e) {
    var ev = JSON.parse(e.data);
    if (ev.type === "reset") {
      list.innerHTML = "";
      (ev.messages || []).forEach(render);
    } else if (ev.type === "typing") {
      typing.hidden = false;
    } else if (ev.type === "message") {
      if (ev.message.sender === "bot") typing.hidden = true;
      render(ev.message);
    }
  };

  form.addEventListener("submit", function(e) {
    if (send(input.value)) {
      e.preventDefault();
      input.value = "";
    }
  });
  document.querySelectorAll("form.quick").forEach(function(f) {
    f.addEventListener("submit", function(e) {
      if (send(f.querySelector("input[name=message]").value)) e.preventDefault();
    });
  });
  document.getElementById("chat-reset").addEventListener("click", function(e) {
    if (!open) return;
    e.preventDefault();
    ws.send(JSON.stringify({ type: "reset" }));
  });
})();
`
