package main

import (
	"html/template"
	"net/http"
)

var templates = template.Must(template.New("index").Parse(indexTemplate))

func init() {
	template.Must(templates.New("bin").Parse(binTemplate))
	template.Must(templates.New("map").Parse(mapTemplate))
}

func Render(h *handler, w http.ResponseWriter, r *http.Request, title, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	output := struct {
		Title string
		Data  interface{}
	}{Title: title, Data: data}

	if err := templates.ExecuteTemplate(w, name, output); err != nil {
		h.Global.log.Println(err)
	}
}

func HTTPError(h *handler, w http.ResponseWriter, r *http.Request, err error) {
	h.Global.log.Println(r.URL.Path, err)
	http.Error(w, err.Error(), http.StatusNotFound)
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; width: 80%; margin: auto;">
<h1>{{.Data.Site}}</h1>
<p>Basal haplogroup distributions aggregated from {{.Data.DataDir}}.
Each combined bin groups the samples of one political entity within one age
interval; click a bin for its pie charts. The {{.Data.Sites}} sampling sites
are plotted on the <a href="/map">site map</a> and served as JSON under
<a href="/api/sites">/api/sites</a>.</p>

<h2>Y basal haplogroup bins</h2>
<ul>
{{range .Data.YBins}}<li><a href="/bin/y/{{.Index}}">{{.Name}}</a> &mdash; {{.Samples}} samples</li>
{{end}}</ul>

<h2>MT basal haplogroup bins</h2>
<ul>
{{range .Data.MTBins}}<li><a href="/bin/mt/{{.Index}}">{{.Name}}</a> &mdash; {{.Samples}} samples</li>
{{end}}</ul>
</body>
</html>
`

const binTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; width: 80%; margin: auto; text-align: center;">
<h1>{{.Data.Name}}</h1>
<h2>{{.Data.Total}} samples with a resolved {{.Data.Lineage}} haplogroup</h2>
<img src="/pie/{{.Data.Lineage}}/{{.Data.BinIndex}}.png" alt="Basal haplogroup distribution">
<table style="margin: auto;">
<tr><th>Haplogroup</th><th>Samples</th></tr>
{{range .Data.Slices}}<tr><td>{{.Haplogroup}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
<p><a href="/">Back to all bins</a></p>
</body>
</html>
`

const mapTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; width: 80%; margin: auto; text-align: center;">
<h1>{{.Data.Site}} sampling sites</h1>
<p>{{.Data.Sites}} sites. Marker area scales with the number of resolved
samples; hover a marker for its combined bin.</p>
<canvas id="map" width="1080" height="540" style="border: 1px solid #ccc; max-width: 100%;"></canvas>
<p><a href="/">Back to all bins</a></p>
<script>
fetch("/api/sites")
	.then(function (resp) { return resp.json(); })
	.then(function (sites) {
		var canvas = document.getElementById("map");
		var ctx = canvas.getContext("2d");

		// Equirectangular projection onto the canvas
		var project = function (site) {
			return {
				x: (site.long + 180) / 360 * canvas.width,
				y: (90 - site.lat) / 180 * canvas.height,
			};
		};

		ctx.strokeStyle = "#ddd";
		ctx.beginPath();
		ctx.moveTo(0, canvas.height / 2);
		ctx.lineTo(canvas.width, canvas.height / 2);
		ctx.moveTo(canvas.width / 2, 0);
		ctx.lineTo(canvas.width / 2, canvas.height);
		ctx.stroke();

		ctx.fillStyle = "rgba(31, 119, 180, 0.6)";
		(sites || []).forEach(function (site) {
			var p = project(site);
			var samples = site.ySamples + site.mtSamples;
			ctx.beginPath();
			ctx.arc(p.x, p.y, 2 + Math.sqrt(samples), 0, 2 * Math.PI);
			ctx.fill();
		});

		canvas.title = (sites || []).length + " sites";
		canvas.addEventListener("mousemove", function (ev) {
			var rect = canvas.getBoundingClientRect();
			var mx = (ev.clientX - rect.left) * canvas.width / rect.width;
			var my = (ev.clientY - rect.top) * canvas.height / rect.height;

			var hit = "";
			(sites || []).forEach(function (site) {
				var p = project(site);
				if (Math.abs(p.x - mx) < 6 && Math.abs(p.y - my) < 6) {
					hit = site.bin + ": " + site.ySamples + " Y, " + site.mtSamples + " mt";
				}
			});
			canvas.title = hit || (sites || []).length + " sites";
		});
	});
</script>
</body>
</html>
`
