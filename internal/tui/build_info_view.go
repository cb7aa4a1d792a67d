// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-medlux/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicação: MEDLUX\n")
	b.WriteString("Versão: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Data: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("SOBRE", b.String(), "esc: voltar")
}

// buildFooter is the one-line version shown under every main view.
func buildFooter(info models.AppBuildInfo) string {
	return helpStyle.Render("MEDLUX " + info.BuildVersion() + " (" + info.BuildCommit() + ")")
}
