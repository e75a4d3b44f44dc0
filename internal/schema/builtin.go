package schema

import "datasieve/internal/domain"

// Builtin returns the registry of hand-authored industry schemas.
func Builtin() *Registry {
	return NewRegistry(
		doctorRoster(),
		opBilling(),
		retailSales(),
		accountsLedger(),
		pharmacyInventory(),
	)
}

func doctorRoster() *Schema {
	return &Schema{
		Name: "doctor_roster",
		Required: []string{
			"Doctor_ID", "Doctor_Name", "Specialization", "Department",
			"Shift", "Start_Time", "End_Time", "Date",
		},
		Optional: []string{"Contact_Number", "Email", "Years_Experience", "Status"},
		Types: map[string]domain.FieldType{
			"Doctor_ID":        domain.FieldTypeString,
			"Doctor_Name":      domain.FieldTypeString,
			"Specialization":   domain.FieldTypeString,
			"Department":       domain.FieldTypeString,
			"Shift":            domain.FieldTypeString,
			"Start_Time":       domain.FieldTypeString,
			"End_Time":         domain.FieldTypeString,
			"Date":             domain.FieldTypeDate,
			"Contact_Number":   domain.FieldTypeString,
			"Email":            domain.FieldTypeString,
			"Years_Experience": domain.FieldTypeNumber,
			"Status":           domain.FieldTypeString,
		},
	}
}

func opBilling() *Schema {
	return &Schema{
		Name: "opbilling",
		Required: []string{
			"Bill_No", "Patient_ID", "Patient_Name", "Bill_Date",
			"Department", "Amount", "Payment_Mode",
		},
		Optional: []string{"Doctor_Name", "Discount", "GST", "Receipt_No"},
		Types: map[string]domain.FieldType{
			"Bill_No":      domain.FieldTypeString,
			"Patient_ID":   domain.FieldTypeString,
			"Patient_Name": domain.FieldTypeString,
			"Bill_Date":    domain.FieldTypeDate,
			"Department":   domain.FieldTypeString,
			"Amount":       domain.FieldTypeNumber,
			"Payment_Mode": domain.FieldTypeString,
			"Doctor_Name":  domain.FieldTypeString,
			"Discount":     domain.FieldTypeNumber,
			"GST":          domain.FieldTypeNumber,
			"Receipt_No":   domain.FieldTypeString,
		},
	}
}

func retailSales() *Schema {
	return &Schema{
		Name: "retail_sales",
		Required: []string{
			"Order_ID", "Order_Date", "Product_Name", "Quantity",
			"Unit_Price", "Total_Amount",
		},
		Optional: []string{"Customer_Name", "Discount", "Region", "Payment_Mode"},
		Types: map[string]domain.FieldType{
			"Order_ID":      domain.FieldTypeString,
			"Order_Date":    domain.FieldTypeDate,
			"Product_Name":  domain.FieldTypeString,
			"Quantity":      domain.FieldTypeNumber,
			"Unit_Price":    domain.FieldTypeNumber,
			"Total_Amount":  domain.FieldTypeNumber,
			"Customer_Name": domain.FieldTypeString,
			"Discount":      domain.FieldTypeNumber,
			"Region":        domain.FieldTypeString,
			"Payment_Mode":  domain.FieldTypeString,
		},
	}
}

func accountsLedger() *Schema {
	return &Schema{
		Name: "accounts_ledger",
		Required: []string{
			"Entry_ID", "Entry_Date", "Account_Name", "Debit", "Credit",
		},
		Optional: []string{"Balance", "Narration", "Voucher_No"},
		Types: map[string]domain.FieldType{
			"Entry_ID":     domain.FieldTypeString,
			"Entry_Date":   domain.FieldTypeDate,
			"Account_Name": domain.FieldTypeString,
			"Debit":        domain.FieldTypeNumber,
			"Credit":       domain.FieldTypeNumber,
			"Balance":      domain.FieldTypeNumber,
			"Narration":    domain.FieldTypeString,
			"Voucher_No":   domain.FieldTypeString,
		},
	}
}

func pharmacyInventory() *Schema {
	return &Schema{
		Name: "pharmacy_inventory",
		Required: []string{
			"Medicine_Name", "Batch_No", "Expiry_Date", "Stock_Quantity", "Unit_Price",
		},
		Optional: []string{"Manufacturer", "Category", "Reorder_Level"},
		Types: map[string]domain.FieldType{
			"Medicine_Name":  domain.FieldTypeString,
			"Batch_No":       domain.FieldTypeString,
			"Expiry_Date":    domain.FieldTypeDate,
			"Stock_Quantity": domain.FieldTypeNumber,
			"Unit_Price":     domain.FieldTypeNumber,
			"Manufacturer":   domain.FieldTypeString,
			"Category":       domain.FieldTypeString,
			"Reorder_Level":  domain.FieldTypeNumber,
		},
	}
}
