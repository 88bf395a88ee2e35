package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Start(path string) {
	browser, err := CreateBrowser(path)
	if err != nil {
		println("Error happened opening file: " + err.Error())
		return
	}
	if err := tea.NewProgram(&browser).Start(); err != nil {
		panic(err)
	}
}
