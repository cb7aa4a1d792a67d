package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Encerrar vínculo \"" + m.message + "\"?\n\n"
	content += "s sim    n não"
	return overlayBoxStyle.Render(content)
}
