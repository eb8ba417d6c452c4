package experiments

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type bar progressbar.ProgressBar

func newBar(len int, description string, w io.Writer) *bar {
	return (*bar)(progressbar.NewOptions(len,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *bar) Add(i int) {
	(*progressbar.ProgressBar)(b).Add(i)
}

func (b *bar) Close() {
	(*progressbar.ProgressBar)(b).Finish()
	(*progressbar.ProgressBar)(b).Close()
}
