package generator

import "github.com/ridoystarlord/crafto/config"

// cssClasses maps each markup slot in the view stubs to the class string
// for one CSS dialect.
var cssClasses = map[config.CSS]map[string]string{
	config.CSSTailwind: {
		"containerClass":  "max-w-5xl mx-auto px-4 py-8",
		"headerRowClass":  "flex items-center justify-between mb-6",
		"headingClass":    "text-2xl font-semibold text-gray-900",
		"tableClass":      "min-w-full divide-y divide-gray-200",
		"thClass":         "px-4 py-2 text-left text-xs font-medium text-gray-500 uppercase",
		"tdClass":         "px-4 py-2 text-sm text-gray-700",
		"buttonClass":     "inline-flex items-center rounded bg-indigo-600 px-3 py-2 text-sm font-medium text-white hover:bg-indigo-500",
		"linkClass":       "text-indigo-600 hover:text-indigo-500 text-sm",
		"dangerLinkClass": "text-red-600 hover:text-red-500 text-sm",
		"alertClass":      "mb-4 rounded bg-red-50 p-3 text-sm text-red-700",
		"successClass":    "mb-4 rounded bg-green-50 p-3 text-sm text-green-700",
		"formGroupClass":  "mb-4",
		"labelClass":      "block text-sm font-medium text-gray-700 mb-1",
		"inputClass":      "block w-full rounded border-gray-300 shadow-sm text-sm",
		"detailListClass": "divide-y divide-gray-200",
		"dtClass":         "text-sm font-medium text-gray-500",
		"ddClass":         "text-sm text-gray-900 mb-3",
		"cssLink":         `    <script src="https://cdn.tailwindcss.com"></script>`,
		"bodyClass":       "bg-gray-50 text-gray-900",
		"navClass":        "bg-white shadow",
		"navInnerClass":   "max-w-5xl mx-auto px-4 py-3 flex items-center justify-between",
		"navBrandClass":   "text-lg font-semibold",
		"navLinksClass":   "flex gap-4",
		"navLinkClass":    "text-sm text-gray-600 hover:text-gray-900",
		"mainClass":       "py-6",
		"cardGridClass":   "grid grid-cols-1 gap-4 sm:grid-cols-2 lg:grid-cols-3 mt-6",
		"cardClass":       "block rounded border border-gray-200 bg-white p-4 shadow-sm hover:shadow",
		"mutedClass":      "text-sm text-gray-500",
	},
	config.CSSBootstrap: {
		"containerClass":  "container py-4",
		"headerRowClass":  "d-flex align-items-center justify-content-between mb-4",
		"headingClass":    "h3 mb-0",
		"tableClass":      "table table-striped",
		"thClass":         "text-start",
		"tdClass":         "align-middle",
		"buttonClass":     "btn btn-primary btn-sm",
		"linkClass":       "btn btn-link btn-sm",
		"dangerLinkClass": "btn btn-link btn-sm text-danger",
		"alertClass":      "alert alert-danger",
		"successClass":    "alert alert-success",
		"formGroupClass":  "mb-3",
		"labelClass":      "form-label",
		"inputClass":      "form-control",
		"detailListClass": "row",
		"dtClass":         "col-sm-3 fw-bold",
		"ddClass":         "col-sm-9",
		"cssLink":         `    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">`,
		"bodyClass":       "bg-light",
		"navClass":        "navbar navbar-expand bg-white shadow-sm",
		"navInnerClass":   "container d-flex align-items-center justify-content-between",
		"navBrandClass":   "navbar-brand",
		"navLinksClass":   "navbar-nav flex-row gap-3",
		"navLinkClass":    "nav-link",
		"mainClass":       "py-4",
		"cardGridClass":   "row g-3 mt-3",
		"cardClass":       "card card-body text-decoration-none",
		"mutedClass":      "text-muted",
	},
}

func classesFor(css config.CSS) map[string]string {
	if classes, ok := cssClasses[css]; ok {
		return classes
	}
	return cssClasses[config.CSSTailwind]
}
