package middleware

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// GzipOptions configura el middleware de compresión de respuestas
type GzipOptions struct {
	ExcludedPaths []string
}

// ForceGzipOptions configura el middleware de compresión forzada
type ForceGzipOptions struct {
	CheckClientSupport bool
}

// GzipReader descomprime el body de las solicitudes entrantes que llegan
// con Content-Encoding: gzip; las demás pasan sin tocar
func GzipReader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(400, gin.H{"error": "invalid gzip body"})
				return
			}
			defer reader.Close()
			c.Request.Body = io.NopCloser(reader)
			c.Request.Header.Del("Content-Encoding")
			c.Request.Header.Del("Content-Length")
		}
		c.Next()
	}
}

// GzipMiddleware comprime las respuestas cuando el cliente lo soporta,
// salvo en las rutas excluidas
func GzipMiddleware(opts GzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isExcludedPath(c.Request.URL.Path, opts.ExcludedPaths) {
			c.Next()
			return
		}
		if !clientSupportsGzip(c) {
			c.Next()
			return
		}
		compressResponse(c)
	}
}

// ForceGzipMiddleware comprime la respuesta sin importar la ruta;
// opcionalmente verifica primero que el cliente soporte gzip
func ForceGzipMiddleware(opts ForceGzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.CheckClientSupport && !clientSupportsGzip(c) {
			c.Next()
			return
		}
		compressResponse(c)
	}
}

// gzipWriter envuelve el ResponseWriter de gin con un gzip.Writer
type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.writer.Write([]byte(s))
}

func compressResponse(c *gin.Context) {
	gz := gzip.NewWriter(c.Writer)
	c.Header("Content-Encoding", "gzip")
	c.Header("Vary", "Accept-Encoding")
	c.Writer = &gzipWriter{ResponseWriter: c.Writer, writer: gz}
	defer func() {
		gz.Close()
		c.Header("Content-Length", "")
	}()
	c.Next()
}

func clientSupportsGzip(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept-Encoding"), "gzip")
}

func isExcludedPath(path string, excluded []string) bool {
	for _, p := range excluded {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
