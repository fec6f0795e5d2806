package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index serves the report form.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Daily Booking Reports</title>
<style>
  body { font-family: sans-serif; max-width: 32em; margin: 3em auto; }
  label { display: block; margin-top: 1em; }
  input, select { width: 100%; padding: 0.4em; box-sizing: border-box; }
  button { margin-top: 1.5em; padding: 0.6em 1.2em; }
  #result { margin-top: 1.5em; }
  .error { color: #b00020; }
</style>
</head>
<body>
<h1>Daily Booking Reports</h1>

<label>Target date <input type="date" id="date"></label>
<label>Password <input type="password" id="password"></label>

<details>
  <summary>Credential overrides (optional)</summary>
  <label>Long-life token <input type="password" id="longLifeToken"></label>
  <label>Refresh token <input type="password" id="refreshToken"></label>
  <label>Invite code <input type="password" id="inviteCode"></label>
</details>

<button id="generate">Generate reports</button>
<button id="clear">Clear stored tokens</button>

<div id="result"></div>

<script>
const result = document.getElementById('result');
const value = id => document.getElementById(id).value;

document.getElementById('generate').addEventListener('click', async () => {
  result.textContent = 'Generating…';
  const resp = await fetch('/api/reports', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      date: value('date'),
      password: value('password'),
      longLifeToken: value('longLifeToken'),
      refreshToken: value('refreshToken'),
      inviteCode: value('inviteCode'),
    }),
  });
  const data = await resp.json();
  if (!resp.ok) {
    result.innerHTML = '<p class="error"></p>';
    result.firstChild.textContent = data.error;
    return;
  }
  result.innerHTML =
    '<p>Found ' + data.bookings + ' bookings: ' + data.arrivals + ' arrivals, ' +
    data.departures + ' departures, ' + data.stayThrough + ' staying through.</p>' +
    '<p><a href="' + data.frontDeskUrl + '">Download front desk report</a></p>' +
    '<p><a href="' + data.housekeepingUrl + '">Download housekeeping report</a></p>' +
    (data.warnings ? '<p class="error">' + data.warnings.join('<br>') + '</p>' : '');
});

document.getElementById('clear').addEventListener('click', async () => {
  const resp = await fetch('/api/tokens', {
    method: 'DELETE',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({password: value('password')}),
  });
  const data = await resp.json();
  result.textContent = resp.ok ? data.message : data.error;
});
</script>
</body>
</html>
`
