// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Kind is the closed set of node kinds the rules distinguish.
//
// Grammar node types without a dedicated kind map to [KindOther], type-level
// subtrees collapse into a single [KindType] leaf.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind

const (
	KindOther Kind = iota
	KindProgram
	KindIdentifier
	KindPropertyIdentifier
	KindPrivatePropertyIdentifier
	KindShorthandProperty
	KindShorthandPropertyPattern
	KindThis
	KindStringLiteral
	KindNumberLiteral
	KindTemplateString
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSubscriptExpression
	KindChainExpression
	KindArguments
	KindArrowFunction
	KindFunctionExpression
	KindFunctionDeclaration
	KindMethodDefinition
	KindClassDeclaration
	KindClassExpression
	KindClassBody
	KindObjectLiteral
	KindPair
	KindComputedPropertyName
	KindArrayLiteral
	KindSpreadElement
	KindParenthesizedExpression
	KindAsExpression
	KindSatisfiesExpression
	KindNonNullExpression
	KindTypeAssertion
	KindAssignmentExpression
	KindBinaryExpression
	KindUnaryExpression
	KindTernaryExpression
	KindAwaitExpression
	KindVariableDeclaration
	KindVariableDeclarator
	KindObjectPattern
	KindArrayPattern
	KindPairPattern
	KindAssignmentPattern
	KindRestPattern
	KindFormalParameters
	KindRequiredParameter
	KindOptionalParameter
	KindStatementBlock
	KindReturnStatement
	KindExpressionStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindCatchClause
	KindImportStatement
	KindImportClause
	KindNamedImports
	KindImportSpecifier
	KindNamespaceImport
	KindExportStatement
	KindExportSpecifier
	KindJSXElement
	KindJSXSelfClosingElement
	KindJSXOpeningElement
	KindJSXAttribute
	KindJSXExpression
	KindEnumDeclaration
	KindType
)

// grammarKinds maps tree-sitter node types of the JavaScript, TypeScript and TSX grammars to kinds.
var grammarKinds = map[string]Kind{
	// keep-sorted start
	"abstract_class_declaration":            KindClassDeclaration,
	"arguments":                             KindArguments,
	"array":                                 KindArrayLiteral,
	"array_pattern":                         KindArrayPattern,
	"arrow_function":                        KindArrowFunction,
	"as_expression":                         KindAsExpression,
	"assignment_expression":                 KindAssignmentExpression,
	"assignment_pattern":                    KindAssignmentPattern,
	"augmented_assignment_expression":       KindAssignmentExpression,
	"await_expression":                      KindAwaitExpression,
	"binary_expression":                     KindBinaryExpression,
	"call_expression":                       KindCallExpression,
	"catch_clause":                          KindCatchClause,
	"class":                                 KindClassExpression,
	"class_body":                            KindClassBody,
	"class_declaration":                     KindClassDeclaration,
	"computed_property_name":                KindComputedPropertyName,
	"enum_declaration":                      KindEnumDeclaration,
	"export_specifier":                      KindExportSpecifier,
	"export_statement":                      KindExportStatement,
	"expression_statement":                  KindExpressionStatement,
	"for_in_statement":                      KindForInStatement,
	"for_statement":                         KindForStatement,
	"formal_parameters":                     KindFormalParameters,
	"function":                              KindFunctionExpression,
	"function_declaration":                  KindFunctionDeclaration,
	"function_expression":                   KindFunctionExpression,
	"generator_function":                    KindFunctionExpression,
	"generator_function_declaration":        KindFunctionDeclaration,
	"identifier":                            KindIdentifier,
	"if_statement":                          KindIfStatement,
	"import_clause":                         KindImportClause,
	"import_specifier":                      KindImportSpecifier,
	"import_statement":                      KindImportStatement,
	"jsx_attribute":                         KindJSXAttribute,
	"jsx_element":                           KindJSXElement,
	"jsx_expression":                        KindJSXExpression,
	"jsx_opening_element":                   KindJSXOpeningElement,
	"jsx_self_closing_element":              KindJSXSelfClosingElement,
	"lexical_declaration":                   KindVariableDeclaration,
	"member_expression":                     KindMemberExpression,
	"method_definition":                     KindMethodDefinition,
	"named_imports":                         KindNamedImports,
	"namespace_import":                      KindNamespaceImport,
	"new_expression":                        KindNewExpression,
	"non_null_expression":                   KindNonNullExpression,
	"number":                                KindNumberLiteral,
	"object":                                KindObjectLiteral,
	"object_assignment_pattern":             KindAssignmentPattern,
	"object_pattern":                        KindObjectPattern,
	"optional_parameter":                    KindOptionalParameter,
	"pair":                                  KindPair,
	"pair_pattern":                          KindPairPattern,
	"parenthesized_expression":              KindParenthesizedExpression,
	"private_property_identifier":           KindPrivatePropertyIdentifier,
	"program":                               KindProgram,
	"property_identifier":                   KindPropertyIdentifier,
	"required_parameter":                    KindRequiredParameter,
	"rest_pattern":                          KindRestPattern,
	"return_statement":                      KindReturnStatement,
	"satisfies_expression":                  KindSatisfiesExpression,
	"shorthand_property_identifier":         KindShorthandProperty,
	"shorthand_property_identifier_pattern": KindShorthandPropertyPattern,
	"spread_element":                        KindSpreadElement,
	"statement_block":                       KindStatementBlock,
	"string":                                KindStringLiteral,
	"subscript_expression":                  KindSubscriptExpression,
	"template_string":                       KindTemplateString,
	"ternary_expression":                    KindTernaryExpression,
	"this":                                  KindThis,
	"type_assertion":                        KindTypeAssertion,
	"unary_expression":                      KindUnaryExpression,
	"variable_declaration":                  KindVariableDeclaration,
	"variable_declarator":                   KindVariableDeclarator,
	// keep-sorted end
}

// typeNodes are grammar node types that only occur in type positions.
// Their subtrees never contain value references the rules care about.
var typeNodes = map[string]struct{}{
	// keep-sorted start
	"abstract_method_signature": {},
	"ambient_declaration":       {},
	"array_type":                {},
	"asserts_annotation":        {},
	"call_signature":            {},
	"conditional_type":          {},
	"function_signature":        {},
	"function_type":             {},
	"generic_type":              {},
	"implements_clause":         {},
	"index_signature":           {},
	"index_type_query":          {},
	"interface_declaration":     {},
	"intersection_type":         {},
	"literal_type":              {},
	"lookup_type":               {},
	"method_signature":          {},
	"nested_type_identifier":    {},
	"object_type":               {},
	"omitting_type_annotation":  {},
	"opting_type_annotation":    {},
	"parenthesized_type":        {},
	"predefined_type":           {},
	"property_signature":        {},
	"readonly_type":             {},
	"tuple_type":                {},
	"type_alias_declaration":    {},
	"type_annotation":           {},
	"type_arguments":            {},
	"type_identifier":           {},
	"type_parameters":           {},
	"type_predicate_annotation": {},
	"type_query":                {},
	"union_type":                {},
	// keep-sorted end
}

func kindOf(grammarType string) Kind {
	if k, ok := grammarKinds[grammarType]; ok {
		return k
	}

	if _, ok := typeNodes[grammarType]; ok {
		return KindType
	}

	return KindOther
}

// KindByName returns the kind with the given name, as printed by [Kind.String].
func KindByName(name string) (Kind, bool) {
	for i := range len(_Kind_index) - 1 {
		if k := Kind(i); k.String() == name {
			return k, true
		}
	}

	return KindOther, false
}

// IsChainElement reports whether nodes of this kind can continue an optional chain.
func (k Kind) IsChainElement() bool {
	switch k {
	case KindCallExpression, KindMemberExpression, KindSubscriptExpression:
		return true

	default:
		return false
	}
}

// IsFunction reports whether the kind is a function literal that is recreated on every evaluation.
func (k Kind) IsFunction() bool {
	return k == KindArrowFunction || k == KindFunctionExpression
}

// IsTransparent reports whether the kind wraps an expression without changing its runtime identity.
func (k Kind) IsTransparent() bool {
	switch k {
	case KindParenthesizedExpression,
		KindAsExpression,
		KindSatisfiesExpression,
		KindNonNullExpression,
		KindTypeAssertion,
		KindChainExpression:
		return true

	default:
		return false
	}
}
