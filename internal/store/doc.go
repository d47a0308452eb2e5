// Package store defines interfaces for task persistence and the ordering and
// paging vocabulary shared by store implementations. It holds no business
// rules: validation and existence checks belong to the service layer.
package store
