package page

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>NewsMap: {{.SectionName}}</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0, maximum-scale=1.0, user-scalable=no">
    <style>
        body { background: #f0f4f8; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; display: flex; flex-direction: column; align-items: center; padding: 20px 0; margin: 0; }

        h1 { color: #2d3748; margin-bottom: 20px; font-size: 24px; text-align: center; padding: 0 10px; }

        .canvas-container {
            position: relative;
            width: 100%;
            max-width: 1200px;
            border: 4px solid #2b6cb0;
            border-radius: 12px;
            box-shadow: 0 10px 25px rgba(0,0,0,0.1);
            background: white;
            overflow: hidden;
            margin-bottom: 50px;
            box-sizing: border-box;
        }

        .main-image { width: 100%; height: auto; display: block; }

        .news-marker { position: absolute; width: 32px; height: 32px; background: rgba(66, 153, 225, 0.85); border: 2px solid #fff; border-radius: 50%; cursor: pointer; transform: translate(-50%, -50%); transition: all 0.2s ease; z-index: 10; box-shadow: 0 2px 4px rgba(0,0,0,0.3); }
        .news-marker:hover { background: #2b6cb0; transform: translate(-50%, -50%) scale(1.2); z-index: 30; border-color: #bee3f8; }
        .marker-number { display: flex; justify-content: center; align-items: center; width: 100%; height: 100%; color: white; font-weight: bold; font-size: 14px; }

        .summary-box { position: absolute; width: 300px; background: white; color: #2d3748; padding: 16px; border-radius: 8px; box-shadow: 0 15px 30px rgba(0,0,0,0.25); opacity: 0; visibility: hidden; transition: opacity 0.2s; pointer-events: auto; z-index: 20; text-align: left; border: 1px solid #e2e8f0; }

        .summary-box.popup-center { left: 50%; transform: translateX(-50%); }
        .summary-box.popup-left { left: 0; transform: translateX(0); }
        .summary-box.popup-right { right: 0; left: auto; transform: translateX(0); }

        .summary-box.popup-up { bottom: 130%; }
        .summary-box.popup-up::after { content: ""; position: absolute; top: 100%; left: 50%; border: 8px solid transparent; border-top-color: white; margin-left: -8px; }

        .summary-box.popup-down { top: 130%; }
        .summary-box.popup-down::after { content: ""; position: absolute; bottom: 100%; left: 50%; border: 8px solid transparent; border-bottom-color: white; margin-left: -8px; }

        .news-marker:hover .summary-box, .summary-box:hover { opacity: 1; visibility: visible; }

        h3 { margin: 0 0 6px 0; font-size: 16px; color: #2d3748; line-height: 1.3; }
        .source { font-size: 11px; color: #718096; text-transform: uppercase; font-weight: 700; margin-bottom: 8px; display: block; }
        p { margin: 0 0 10px 0; font-size: 13px; line-height: 1.5; color: #4a5568; }
        .mnemonic-hint { background: #ebf8ff; color: #2c5282; padding: 8px; border-radius: 4px; font-size: 12px; font-style: italic; margin-bottom: 10px; border-left: 3px solid #4299e1; }
        a { display: inline-block; background: #4299e1; color: white; padding: 4px 12px; border-radius: 4px; text-decoration: none; font-size: 12px; font-weight: 600; }

        @media (max-width: 768px) {
            .canvas-container { border: none; border-radius: 0; margin-bottom: 20px; }
            .news-marker { width: 40px; height: 40px; }
            .summary-box, .summary-box.popup-up, .summary-box.popup-down, .summary-box.popup-left, .summary-box.popup-right {
                position: fixed !important; bottom: 0 !important; top: auto !important; left: 0 !important; right: 0 !important;
                width: 100% !important; max-width: 100% !important; transform: none !important;
                border-radius: 16px 16px 0 0; box-shadow: 0 -5px 20px rgba(0,0,0,0.2); margin: 0 !important; z-index: 9999;
            }
            .summary-box::after { display: none !important; }
        }
    </style>
</head>
<body>
    <h1>NewsMap: {{.SectionName}}</h1>
    <div class="canvas-container">
        <img src="{{.ImagePath}}" class="main-image" alt="NewsMap scene for {{.SectionName}}">
{{- range .Markers}}
        <div class="news-marker" data-story="{{.ID}}" style="top: {{.Y}}%; left: {{.X}}%;">
            <div class="marker-number">{{.ID}}</div>
            <div class="summary-box {{.VClass}} {{.HClass}}">
                <h3>{{.Title}}</h3>
                <span class="source">{{.Source}}</span>
                <div class="mnemonic-hint"><strong>Memory Hook:</strong> {{.Rationale}}</div>
                <p>{{.Description}}</p>
                <a href="{{.URL}}" target="_blank" rel="noopener">Read Story</a>
            </div>
        </div>
{{- end}}
    </div>
</body>
</html>
`

const galleryTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>NewsMap Gallery</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { background: #f0f4f8; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0; padding: 20px; }
        h1 { color: #2d3748; text-align: center; }
        .gallery { max-width: 800px; margin: 0 auto; }
        .entry { background: white; border: 1px solid #e2e8f0; border-radius: 8px; padding: 16px; margin-bottom: 12px; box-shadow: 0 2px 6px rgba(0,0,0,0.08); }
        .entry a { color: #2b6cb0; font-weight: 600; text-decoration: none; font-size: 16px; }
        .entry .when { color: #718096; font-size: 12px; margin-top: 4px; }
    </style>
</head>
<body>
    <h1>NewsMap Gallery</h1>
    <div class="gallery">
{{- range .Entries}}
        <div class="entry">
            <a href="{{.Href}}">{{.Title}}</a>
            <div class="when">{{.When}}</div>
        </div>
{{- end}}
{{- if not .Entries}}
        <div class="entry">No archived pages yet.</div>
{{- end}}
    </div>
</body>
</html>
`
