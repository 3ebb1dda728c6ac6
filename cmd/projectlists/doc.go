// The projectlists program reads and changes projects, lists and items held by the project service at
// http://localhost:3000.
//
// Reads print JSON: get-all-projects prints every project, with its lists as references only; get-project prints
// one project with the full contents of each of its lists, in the order the project lists them. Creations print
// the new entity's id as returned by the service. Updates and deletions print nothing.
//
// For update-item, only the exact word "true" marks the item as done; anything else, including "TRUE" and "1",
// marks it as not done.
//
// On failure the program prints nothing on standard output, logs the reason on standard error, and exits with
// status 1 (2 for bad usage). Pass --debug to see every request, or --wire-log to record them with their bodies.
package main // import "github.com/nicolagi/projectlists/cmd/projectlists"
