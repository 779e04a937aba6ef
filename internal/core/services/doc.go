// Package services implements the query pipeline: semantic and lexical
// retrieval, reciprocal rank fusion, context assembly and grounded answer
// synthesis, orchestrated per request by QueryService.
package services
