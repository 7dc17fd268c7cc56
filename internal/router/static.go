package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// staticFiles serves regular files below root without directory listings.
// Unlike http.FileServer it does not redirect ".../index.html" to ".../".
func staticFiles(root string) gin.HandlerFunc {
	fs := gin.Dir(root, false)
	return func(c *gin.Context) {
		name := path.Clean("/" + c.Param("filepath"))

		f, err := fs.Open(name)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}

		http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	}
}
