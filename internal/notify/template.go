package notify

import (
	"html/template"
	"strings"

	"github.com/lsweb-studio/apiserver/types"
)

// projectTypeLabels maps project category codes to the human-readable
// labels shown in the notification. Unknown codes pass through verbatim.
var projectTypeLabels = map[string]string{
	"web-corporativa":      "Web Corporativa",
	"e-commerce":           "E-commerce",
	"sistema-ventas-bd":    "Sistema de Ventas y Base de Datos",
	"crm-personalizado":    "CRM Personalizado",
	"landing-page":         "Landing Page",
	"blog":                 "Blog/Portfolio",
	"app-web":              "Aplicación Web",
	"marketing-digital":    "Marketing Digital",
	"community-management": "Community Management",
}

// ProjectTypeLabel returns the display label for a project category code.
func ProjectTypeLabel(code string) string {
	if label, ok := projectTypeLabels[code]; ok {
		return label
	}
	return code
}

const createdAtLayout = "02/01/2006 15:04"

const requestTemplateHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nueva Solicitud de Web - LS WEB</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #3b82f6, #1d4ed8); color: white; padding: 20px; text-align: center; }
        .content { background: #f8f9fa; padding: 30px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #2563eb; }
        .value { margin-left: 10px; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌐 LS WEB - Nueva Solicitud</h1>
            <p>Has recibido una nueva solicitud de web personalizada</p>
        </div>
        <div class="content">
            <div class="field">
                <span class="label">👤 Nombre:</span>
                <span class="value">{{.Name}}</span>
            </div>
            <div class="field">
                <span class="label">📧 Email:</span>
                <span class="value">{{.Email}}</span>
            </div>
            {{if .Phone}}
            <div class="field">
                <span class="label">📱 Teléfono:</span>
                <span class="value">{{.Phone}}</span>
            </div>
            {{end}}
            {{if .Company}}
            <div class="field">
                <span class="label">🏢 Empresa:</span>
                <span class="value">{{.Company}}</span>
            </div>
            {{end}}
            <div class="field">
                <span class="label">🎯 Tipo de Proyecto:</span>
                <span class="value">{{.ProjectTypeLabel}}</span>
            </div>
            {{if .Budget}}
            <div class="field">
                <span class="label">💰 Presupuesto:</span>
                <span class="value">{{.Budget}}</span>
            </div>
            {{end}}
            {{if .Timeline}}
            <div class="field">
                <span class="label">⏰ Tiempo de Entrega:</span>
                <span class="value">{{.Timeline}}</span>
            </div>
            {{end}}
            <div class="field">
                <span class="label">📝 Descripción del Proyecto:</span>
                <div style="background: white; padding: 15px; border-left: 4px solid #3b82f6; margin-top: 10px;">
                    {{.Description}}
                </div>
            </div>
        </div>
        <div class="footer">
            <p><strong>LS WEB</strong> - Creando experiencias digitales excepcionales</p>
            <p>Fecha: {{.CreatedAt}}</p>
        </div>
    </div>
</body>
</html>
`

var requestTemplate = template.Must(template.New("contact-request").Parse(requestTemplateHTML))

type requestTemplateData struct {
	Name             string
	Email            string
	Phone            *string
	Company          *string
	ProjectTypeLabel string
	Budget           *string
	Timeline         *string
	Description      string
	CreatedAt        string
}

func renderRequest(request types.ContactRequest) (string, error) {
	data := requestTemplateData{
		Name:             request.Name,
		Email:            request.Email,
		Phone:            request.Phone,
		Company:          request.Company,
		ProjectTypeLabel: ProjectTypeLabel(request.ProjectType),
		Budget:           request.Budget,
		Timeline:         request.Timeline,
		Description:      request.Description,
		CreatedAt:        request.CreatedAt.Format(createdAtLayout),
	}

	var buf strings.Builder
	if err := requestTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func requestSubject(request types.ContactRequest) string {
	return "Nueva Solicitud de Web - " + request.Name
}
