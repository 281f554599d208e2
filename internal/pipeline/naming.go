package pipeline

import (
	"fmt"
	"strconv"

	"github.com/mviana/autoedit/internal/fileutil"
)

// autoEditOutputPath derives the default output name next to the input,
// encoding the three numeric settings so different runs never clobber each
// other: "<name> - Auto Edit - <threshold> silence - <min> minimo - pad <padding><ext>".
func autoEditOutputPath(inputPath string, thresholdDB float64, minSilenceLenMS, paddingMS int64) string {
	suffix := fmt.Sprintf(" - Auto Edit - %s silence - %d minimo - pad %d",
		strconv.FormatFloat(thresholdDB, 'f', -1, 64), minSilenceLenMS, paddingMS)
	return fileutil.OutputPath(inputPath, suffix, "")
}
