// Package schema declares the configuration document edited by an operator
// and validates it as a whole.
//
// A Document holds a log section, a global lottery section, an ordered list of
// groups and a connection URL. Lottery settings are one generic record,
// Lottery[F], validated under a Presence policy: the global section (Global)
// requires its conditions and post-stay range, while a group override
// (Override) leaves every field optional so that an empty field inherits the
// global value.
//
// Validate is total: it walks every field of every group and returns the
// complete, ordered list of issues. Each Issue carries the Path of the field it
// belongs to, so a caller can route it to the originating input:
//
//	for _, issue := range schema.Validate(doc) {
//	    if idx, ok := issue.Path.GroupIndex(); ok {
//	        // highlight group idx
//	    }
//	}
package schema
