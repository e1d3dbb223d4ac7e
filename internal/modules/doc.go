// Package modules groups the feature modules of the site. Each one owns a
// slice of the interactive page: the FAQ accordion, the donation selector
// and the newsletter form. They receive their services through a
// Dependencies struct and register their routes in Boot.
package modules
