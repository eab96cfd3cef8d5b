package testdb

type options struct {
	tableName   string
	users       []User
	uniqueEmail bool
	nullable    bool
}

type OptionsFunc func(o *options)

// WithTableName sets the name of the seeded users table. Defaults to "users".
func WithTableName(name string) OptionsFunc {
	return func(o *options) { o.tableName = name }
}

// WithUsers seeds the users table with the given rows instead of [DefaultUsers].
func WithUsers(users ...User) OptionsFunc {
	return func(o *options) { o.users = users }
}

// WithUniqueEmail adds a UNIQUE constraint to the email column.
func WithUniqueEmail() OptionsFunc {
	return func(o *options) { o.uniqueEmail = true }
}

// WithNullableColumns drops the NOT NULL constraints from the email and is_admin columns.
func WithNullableColumns() OptionsFunc {
	return func(o *options) { o.nullable = true }
}

func newOptions(opts []OptionsFunc) *options {
	option := &options{
		tableName: "users",
		users:     DefaultUsers(),
	}
	for _, f := range opts {
		f(option)
	}
	return option
}
