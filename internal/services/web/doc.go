// Package web serves The Great Beans public website.
//
// It composes the page modules, the quote API and the crawler files behind
// one middleware chain that assigns request ids, logs each request, traces it
// and resolves the visitor's locale before any module sees it.
package web
