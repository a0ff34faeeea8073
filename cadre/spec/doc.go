// Package spec loads cadre specifications and serialises generated cadres.
//
// A specification names the people to place, the number of groups, and optional
// preferred and forbidden groups:
//
//	people: [Ann, Ben, Cat, Dan]
//	num-groups: 2
//	preferred-groups:
//	  - [Ann, Ben]
//	forbidden-groups:
//	  - [Cat, Ann]
//
// Loading is strict. Unknown or missing keys and groups naming unlisted people are
// rejected with errors wrapping ErrInvalidSpec.
package spec
