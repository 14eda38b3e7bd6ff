package groups

// Property group names, as used for documents and top-level keys.
const (
	BasicInfoMap                = "basicInfoMap"
	DatabaseInfoMap             = "databaseInfoMap"
	LittleAdjustmentMap         = "littleAdjustmentMap"
	TypeMappingMap              = "typeMappingMap"
	AdditionalForeignKeyMap     = "additionalForeignKeyMap"
	AdditionalPrimaryKeyMap     = "additionalPrimaryKeyMap"
	AdditionalUniqueKeyMap      = "additionalUniqueKeyMap"
	MultipleFKPropertyMap       = "multipleFKPropertyMap"
	OptimisticLockDefinitionMap = "optimisticLockDefinitionMap"
	CommonColumnMap             = "commonColumnMap"
	SequenceDefinitionMap       = "sequenceDefinitionMap"
	OutsideSqlDefinitionMap     = "outsideSqlDefinitionMap"
	DocumentDefinitionMap       = "documentDefinitionMap"
)

// Names returns every group name in resolution order.
func Names() []string {
	return []string{
		BasicInfoMap,
		DatabaseInfoMap,
		LittleAdjustmentMap,
		TypeMappingMap,
		AdditionalForeignKeyMap,
		AdditionalPrimaryKeyMap,
		AdditionalUniqueKeyMap,
		MultipleFKPropertyMap,
		OptimisticLockDefinitionMap,
		CommonColumnMap,
		SequenceDefinitionMap,
		OutsideSqlDefinitionMap,
		DocumentDefinitionMap,
	}
}
