package port

// Download is the download-manager collaborator. The controller hands it
// response URIs it decided not to render.
type Download interface {
	// HandleRequest queues uri for download. mime is the response content
	// type as reported by the server, possibly empty.
	HandleRequest(uri, mime string) error
}
