package site

// layoutTemplate wraps every page with the navbar and footer.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.Site.Name}}</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <header class="navbar">
    <div class="container navbar-inner">
      <a href="/" class="brand"><span class="brand-mark">❤</span> {{.Site.Name}}</a>
      <input type="checkbox" id="nav-toggle" class="nav-toggle" aria-label="Toggle menu">
      <label for="nav-toggle" class="nav-toggle-label" aria-hidden="true">☰</label>
      <nav class="nav-links">
        {{range .Site.Nav}}<a href="{{href .Href}}"{{if isActive $.Current .Href}} class="active" aria-current="page"{{end}}>{{.Label}}</a>
        {{end}}
        <span class="nav-ctas">
        {{range .Site.CTAs}}<a href="{{href .Href}}" class="btn{{if .Primary}} btn-primary{{else}} btn-outline{{end}}{{if isActive $.Current .Href}} active{{end}}">{{.Label}}</a>
        {{end}}
        </span>
      </nav>
    </div>
  </header>
  <main>
    {{with .Notice}}<div class="container"><div class="notice notice-{{.Variant}}" role="status"><strong>{{.Title}}</strong><p>{{.Description}}</p></div></div>{{end}}
    {{.Body}}
  </main>
  <footer class="footer">
    <div class="container footer-inner">
      <div>
        <a href="/" class="brand"><span class="brand-mark">❤</span> {{.Site.Name}}</a>
        <p>{{.Site.Footer.About}}</p>
      </div>
      <div class="footer-links">
        {{range .Site.Nav}}<a href="{{href .Href}}">{{.Label}}</a>{{end}}
      </div>
    </div>
    <div class="container footer-bottom">
      <span>{{.Site.Footer.Copyright}}</span>
      <span>{{range .Site.Footer.Links}}<a href="{{href .Href}}">{{.Label}}</a>{{end}}</span>
    </div>
  </footer>
  {{if .Script}}<script src="/app.js"></script>{{end}}
</body>
</html>{{end}}`

// pageTemplate renders a content page: hero followed by its sections.
const pageTemplate = `{{define "page"}}
<section class="hero">
  <div class="container">
    {{with .Page.Badge}}<span class="badge">{{.}}</span>{{end}}
    <h1>{{.Page.Headline}}{{with .Page.Highlight}} <span class="highlight">{{.}}</span>{{end}}</h1>
    {{with .Page.Intro}}<div class="lead">{{markdown .}}</div>{{end}}
    {{template "actions" .Page.Actions}}
  </div>
</section>
{{range .Page.Sections}}{{section . $.State}}{{end}}
{{end}}

{{define "actions"}}{{if .}}<div class="actions">{{range .}}<a href="{{href .Href}}" class="btn{{if .Primary}} btn-primary{{else}} btn-outline{{end}}">{{.Label}}</a>{{end}}</div>{{end}}{{end}}

{{define "section-head"}}{{if or .Heading .Intro}}<div class="section-head">
  {{with .Heading}}<h2>{{.}}</h2>{{end}}
  {{with .Intro}}<p>{{.}}</p>{{end}}
</div>{{end}}{{end}}

{{define "section-stats"}}<section class="section section-stats"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-4">{{range .Section.Items}}
    <div class="card stat">
      {{with .Icon}}<div class="icon">{{.}}</div>{{end}}
      <div class="stat-value">{{.Value}}</div>
      <div class="stat-label">{{.Label}}</div>
      {{with .Description}}<p class="muted">{{.}}</p>{{end}}
    </div>{{end}}
  </div>
</div></section>{{end}}

{{define "section-cards"}}<section class="section section-cards"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-auto">{{range .Section.Items}}
    <div class="card">
      <div class="card-top">{{with .Icon}}<div class="icon">{{.}}</div>{{end}}{{with .Badge}}<span class="badge badge-outline">{{.}}</span>{{end}}</div>
      {{with .Title}}<h3>{{.}}</h3>{{end}}
      {{with .Description}}<p class="muted">{{.}}</p>{{end}}
      {{with .Points}}<ul class="points">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
      {{with .Label}}<p class="card-note">{{.}}</p>{{end}}
      {{with .Link}}<a href="{{href .Href}}" class="btn btn-primary btn-block">{{.Label}}</a>{{end}}
    </div>{{end}}
  </div>
  {{template "actions" .Section.Actions}}
</div></section>{{end}}

{{define "section-steps"}}<section class="section section-steps"><div class="container">
  {{template "section-head" .Section}}
  <ol class="steps">{{range .Section.Items}}
    <li class="card step">
      <div class="step-number">{{.Value}}</div>
      <div class="step-body">
        <h3>{{with .Icon}}{{.}} {{end}}{{.Title}}</h3>
        <p class="muted">{{.Description}}</p>
        {{with .Points}}<ul class="points check">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
        {{with .Link}}<a href="{{href .Href}}" class="btn btn-primary">{{.Label}} →</a>{{end}}
      </div>
    </li>{{end}}
  </ol>
  {{template "actions" .Section.Actions}}
</div></section>{{end}}

{{define "section-testimonials"}}<section class="section section-testimonials"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-3">{{range .Section.Items}}
    <figure class="card testimonial">
      <div class="stars" aria-label="{{.Rating}} out of 5">{{range .Stars}}★{{end}}</div>
      <blockquote>"{{.Quote}}"</blockquote>
      <figcaption>— {{.Author}}</figcaption>
    </figure>{{end}}
  </div>
</div></section>{{end}}

{{define "section-list-groups"}}<section class="section section-list-groups"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-auto">{{range .Section.Items}}
    <div class="card">
      {{if or .Icon .Title}}<h3>{{with .Icon}}{{.}} {{end}}{{.Title}}</h3>{{end}}
      {{with .Description}}<p class="muted">{{.}}</p>{{end}}
      {{with .Points}}<ul class="points check">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
      {{with .Children}}<dl class="defs">{{range .}}<dt>{{.Title}}</dt><dd>{{.Description}}</dd>{{end}}</dl>{{end}}
    </div>{{end}}
  </div>
</div></section>{{end}}

{{define "section-case-studies"}}<section class="section section-case-studies"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-2">{{range .Section.Items}}
    <article class="card case-study">
      <div class="card-top"><h3>{{.Title}}</h3>{{with .Badge}}<span class="badge badge-outline">{{.}}</span>{{end}}</div>
      <ul class="points trend">{{range .Points}}<li>{{.}}</li>{{end}}</ul>
      {{with .Quote}}<blockquote>"{{.}}"</blockquote>{{end}}
      {{with .Author}}<p class="muted">— {{.}}</p>{{end}}
    </article>{{end}}
  </div>
</div></section>{{end}}

{{define "section-goals"}}<section class="section section-goals"><div class="container">
  {{template "section-head" .Section}}
  <div class="goals">{{range .Section.Items}}
    <div class="card goal">
      <div class="card-top"><h3>{{.Title}}</h3><span class="badge badge-outline">{{.Progress}}%</span></div>
      <div class="progress" role="progressbar" aria-valuenow="{{.Progress}}" aria-valuemin="0" aria-valuemax="100"><span style="width: {{.Progress}}%"></span></div>
    </div>{{end}}
  </div>
</div></section>{{end}}

{{define "section-roadmap"}}<section class="section section-roadmap"><div class="container">
  {{template "section-head" .Section}}
  <div class="roadmap">{{range .Section.Items}}
    <article class="card roadmap-item">
      <div class="roadmap-phase">
        <span class="badge">{{.Badge}}</span>
        <div class="phase">{{.Subtitle}}</div>
        <div class="icon">{{.Icon}}</div>
      </div>
      <div>
        <h3>{{.Title}}</h3>
        <p class="muted">{{.Description}}</p>
        <ul class="points star">{{range .Points}}<li>{{.}}</li>{{end}}</ul>
      </div>
      {{with .Value}}<div class="innovation"><div class="muted">Innovation Level</div><div class="stat-value">{{.}}/10</div><div class="muted">Breakthrough Potential</div></div>{{end}}
    </article>{{end}}
  </div>
</div></section>{{end}}

{{define "section-tech"}}<section class="section section-tech"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-2">{{range .Section.Items}}
    <div class="card">
      <h3>{{with .Icon}}{{.}} {{end}}{{.Title}}</h3>
      <p class="muted">{{.Description}}</p>
      <ul class="tech-list">{{range .Children}}
        <li><div class="card-top"><strong>{{.Title}}</strong>{{with .Badge}}<span class="badge badge-{{lower .}}">{{.}}</span>{{end}}</div><p class="muted">{{.Description}}</p></li>{{end}}
      </ul>
    </div>{{end}}
  </div>
</div></section>{{end}}

{{define "section-contact-methods"}}<section class="section section-contact-methods"><div class="container">
  {{template "section-head" .Section}}
  <div class="grid grid-2">{{range .Section.Items}}
    <div class="card contact-method">
      <div class="icon">{{.Icon}}</div>
      <div>
        <h3>{{.Title}}</h3>
        <p class="contact-value">{{.Value}}</p>
        <p class="muted">{{.Description}}</p>
      </div>
    </div>{{end}}
  </div>
</div></section>{{end}}

{{define "section-hours"}}<section class="section section-hours"><div class="container">
  {{template "section-head" .Section}}
  <div class="card"><table class="hours">{{range .Section.Items}}
    <tr><td class="muted">{{.Title}}</td><td><strong>{{.Value}}</strong></td></tr>{{end}}
  </table></div>
</div></section>{{end}}

{{define "section-markdown"}}<section class="section section-markdown"><div class="container">
  {{with .Section.Heading}}<h2>{{.}}</h2>{{end}}
  <div class="prose">{{markdown .Section.Body}}</div>
</div></section>{{end}}

{{define "section-cta"}}<section class="section section-cta"><div class="container">
  <div class="cta">
    {{with .Section.Heading}}<h2>{{.}}</h2>{{end}}
    {{with .Section.Intro}}<p>{{.}}</p>{{end}}
    {{template "actions" .Section.Actions}}
  </div>
</div></section>{{end}}

{{define "section-contact-form"}}<section class="section section-contact-form" id="contact-form"><div class="container">
  <div class="card">
    {{template "section-head" .Section}}
    {{with .State.Contact}}<form method="post" action="/contact#contact-form" class="form">
      <div class="form-row">
        <label>Full Name *<input name="name" value="{{.Name}}" placeholder="Your full name" required></label>
        <label>Email Address *<input name="email" type="email" value="{{.Email}}" placeholder="your.email@university.edu" required></label>
      </div>
      <label>Organization/University<input name="organization" value="{{.Organization}}" placeholder="University name or organization"></label>
      <label>Contact Type
        <select name="contactType">{{$selected := .ContactType}}{{range contactTypes}}
          <option value="{{.Value}}"{{if eq .Value $selected}} selected{{end}}>{{.Label}}</option>{{end}}
        </select>
      </label>
      <label>Message *<textarea name="message" rows="6" placeholder="Tell us how we can help you..." required>{{.Message}}</textarea></label>
      <button type="submit" class="btn btn-primary btn-block">Send Message ✉</button>
    </form>{{end}}
  </div>
</div></section>{{end}}`

// chatTemplate is the chatbot page. The form works without JavaScript; app.js
// upgrades it to the websocket transport.
const chatTemplate = `{{define "chat"}}
<section class="hero hero-compact">
  <div class="container">
    <h1>AI Mental Health Support</h1>
    <p class="lead">Chat with our AI-powered mental health assistant for immediate support, coping strategies, and guidance.</p>
  </div>
</section>
<section class="section"><div class="container">
  <div class="notice notice-warning"><p><strong>Note:</strong> {{.Disclaimer}}</p></div>
  <div class="chat-layout">
    <div class="card chat" id="chat" data-delay="{{.DelayMS}}">
      <div class="chat-header">
        <div><h3>🤖 MindCare AI Assistant</h3><p class="muted">Online • Responding instantly</p></div>
        <form method="post" action="/chatbot/reset"><button type="submit" class="btn btn-outline btn-sm" id="chat-reset">↻ Reset Chat</button></form>
      </div>
      <div class="chat-messages" id="chat-messages">{{range .Messages}}
        {{template "chat-message" .}}{{end}}
      </div>
      <div class="typing" id="chat-typing" hidden><span></span><span></span><span></span></div>
      <form method="post" action="/chatbot" class="chat-input" id="chat-form">
        <input name="message" id="chat-text" placeholder="Type your message here..." autocomplete="off" required>
        <button type="submit" class="btn btn-primary">Send</button>
      </form>
    </div>
    <aside class="sidebar">
      <div class="card">
        <h3>Quick Responses</h3>
        <p class="muted">Tap to quickly share common feelings</p>
        {{range .QuickResponses}}<form method="post" action="/chatbot" class="quick"><input type="hidden" name="message" value="{{.}}"><button type="submit" class="btn btn-outline btn-block btn-sm">{{.}}</button></form>{{end}}
      </div>
      <div class="card card-danger">
        <h3>⚠ Crisis Resources</h3>
        <a href="tel:1-800-646-3227" class="btn btn-danger btn-block btn-sm">📞 Crisis Hotline</a>
        <p class="muted">Available 24/7 for immediate support during mental health crises.</p>
      </div>
      <div class="card">
        <h3>AI Features</h3>
        <ul class="points"><li>Empathetic responses</li><li>CBT-based techniques</li><li>Crisis detection</li><li>24/7 availability</li></ul>
      </div>
    </aside>
  </div>
</div></section>
{{end}}

{{define "chat-message"}}<div class="msg msg-{{.Sender}} msg-{{.Kind}}">
  {{if eq (print .Kind) "crisis"}}<span class="badge badge-danger">Crisis Support</span>{{else if eq (print .Kind) "suggestion"}}<span class="badge badge-secondary">Coping Strategy</span>{{end}}
  <p>{{.Text}}</p>
  <time datetime="{{.Timestamp.Format "2006-01-02T15:04:05Z07:00"}}">{{.Timestamp.Format "15:04"}}</time>
</div>{{end}}`

// moodTemplate is the mood tracker page.
const moodTemplate = `{{define "mood"}}
<section class="hero hero-compact">
  <div class="container">
    <h1>Mood &amp; Journal Tracker</h1>
    <p class="lead">Track your emotional well-being daily to gain insights into your mental health patterns and progress.</p>
  </div>
</section>
<section class="section"><div class="container">
  <div class="mood-layout">
    <form method="post" action="/mood-tracker" class="mood-form">
      <div class="card">
        <h3>❤ How are you feeling today?</h3>
        <div class="mood-levels">{{range .Levels}}
          <label class="mood-level"><input type="radio" name="mood" value="{{printf "%d" .Level}}"{{if eq .Level $.Form.Mood}} checked{{end}}><span class="emoji">{{.Emoji}}</span><span>{{.Label}}</span></label>{{end}}
        </div>
      </div>
      <div class="card">
        <h3>🧠 What emotions are you experiencing?</h3>
        <div class="emotions">{{range .Emotions}}
          <label class="emotion"><input type="checkbox" name="emotions" value="{{.Label}}"{{if $.Form.Selected .Label}} checked{{end}}><span>{{.Icon}} {{.Label}}</span></label>{{end}}
        </div>
      </div>
      <div class="card">
        <h3>📅 Journal Entry (Optional)</h3>
        <textarea name="notes" rows="6" placeholder="What's on your mind today? Reflect on your day, thoughts, or anything you'd like to remember...">{{.Form.Notes}}</textarea>
        <button type="submit" class="btn btn-primary btn-block">Save Mood Entry</button>
      </div>
    </form>
    <aside class="sidebar">
      <div class="card">
        <h3>📈 Weekly Summary</h3>
        <div class="stat-value">{{.Summary.WeeklyAverageText}}</div>
        <p class="muted">Average mood this week</p>
        <p class="trend trend-{{.Summary.Trend}}">{{.Summary.TrendText}}</p>
        <p class="muted">{{.Summary.Total}} total entries logged</p>
      </div>
      <div class="card">
        <h3>Quick Insights</h3>
        {{if .Summary.Total}}
        <p>☀ Last entry: {{.Summary.LastEntryDate}}</p>
        <p>🌙 Most common emotion: {{.Summary.MostFrequentText}}</p>
        {{else}}
        <p class="muted">Start logging your moods to see personalized insights!</p>
        {{end}}
      </div>
      <div class="card">
        <h3>Recent Entries</h3>
        {{range .Recent}}
        <div class="entry">
          <div class="card-top"><span><strong>{{.Date}}</strong></span><span class="emoji">{{.Mood.Info.Emoji}}</span></div>
          <div>{{range .Emotions}}<span class="badge badge-outline">{{.}}</span>{{end}}</div>
          {{with .Notes}}<p class="muted">{{.}}</p>{{end}}
        </div>
        {{else}}
        <p class="muted">No mood entries yet. Start tracking your mood above!</p>
        {{end}}
      </div>
    </aside>
  </div>
</div></section>
{{end}}`

// notFoundTemplate is rendered for unknown routes.
const notFoundTemplate = `{{define "not-found"}}
<section class="hero not-found">
  <div class="container">
    <h1>404</h1>
    <p class="lead">Oops! Page not found</p>
    <a href="/" class="btn btn-primary">Return to Home</a>
  </div>
</section>
{{end}}`
