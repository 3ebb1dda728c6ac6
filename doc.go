// The projectlists package contains a client for the HTTP API of a project service that organizes items (tasks with
// a done flag) into lists, and lists into projects. The service is expected at http://localhost:3000; the only
// consumer at the time of writing is the command line program in the cmd/projectlists subdirectory.
//
// Each client method maps onto a single request, with the exception of FullProject, which fetches a project and
// then each of its lists in turn. Nothing is cached between calls: the service is the only source of truth.
//
// All failures are reported as errors wrapping one of ErrTransport, ErrStatusCode, ErrDecode or ErrNoLists. No
// request is ever retried.
//
// Identifiers are appended to query strings without URL encoding. Ids handed out by the service are safe; ids
// typed by hand may not be.
package projectlists // import "github.com/nicolagi/projectlists"
