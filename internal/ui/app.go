package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/export"
)

func RunApp(cfg config.Config, b *board.Board) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)+60))

	boardWidget := NewBoardWidget(b)
	status := widget.NewLabel("Ready")
	boardWidget.OnChange = func() {
		status.SetText(boardWidget.Status())
	}

	toolbar := NewToolbar(boardWidget, myWindow, func() {
		showExportDialog(myWindow, b, cfg, status)
	})

	content := container.NewBorder(toolbar, status, nil, nil, boardWidget)
	myWindow.SetContent(content)
	boardWidget.notify()
	myWindow.ShowAndRun()
}

func showExportDialog(win fyne.Window, b *board.Board, cfg config.Config, status *widget.Label) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		if err := saveExport(writer, b, cfg); err != nil {
			log.Printf("[UI] Export failed: %v", err)
			dialog.ShowError(err, win)
			status.SetText("Export failed")
			return
		}
		status.SetText("Exported " + writer.URI().Name())
	}, win)
	d.SetFileName("sketch" + cfg.ExportFormat().Extension())
	d.Show()
}

// saveExport encodes the board into writer, choosing the format from the
// file extension and falling back to the configured one.
func saveExport(writer fyne.URIWriteCloser, b *board.Board, cfg config.Config) (err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", writer.URI().Name(), cerr)
		}
	}()

	format, perr := export.ParseFormat(writer.URI().Extension())
	if perr != nil {
		format = cfg.ExportFormat()
	}
	return b.Export(writer, board.ExportOptions{Format: format, Trim: cfg.Export.Trim})
}
