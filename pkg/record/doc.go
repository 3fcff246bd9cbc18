// Package record adapts loosely-typed input to validator accessors.
//
// Map, Values and Any wrap the common shapes of run time records (plain
// maps, form values, decoded JSON). Each has a Get method returning nil for
// an absent key, and Key builds a validator.Accessor for any of them:
//
//	rows, err := record.ReadCSV(file)
//	if err != nil {
//		return err
//	}
//	v := validator.Init[record.Map]().
//		For(record.Key[record.Map]("Key"), func(f *validator.FieldValidator[record.Map]) {
//			f.IsNotNull()
//		}).
//		ValidateList(rows)
package record
