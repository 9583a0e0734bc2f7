package layout

import "skelgen/internal/tree"

// Flutter is the lib/ skeleton of a Flutter fintech app: core services,
// data models and repositories, presentation screens and routing. Every
// file is empty.
func Flutter() tree.Dir {
	return tree.NewDir(
		tree.Sub("lib",
			tree.Empty("main.dart"),
			tree.Empty("app.dart"),
			tree.Sub("core",
				tree.Sub("constants",
					tree.Empty("api_constants.dart"),
					tree.Empty("app_constants.dart"),
					tree.Empty("storage_keys.dart"),
				),
				tree.Sub("config",
					tree.Empty("app_config.dart"),
					tree.Empty("environment.dart"),
				),
				tree.Sub("utils",
					tree.Empty("device_utils.dart"),
					tree.Empty("validators.dart"),
					tree.Empty("formatters.dart"),
					tree.Empty("extensions.dart"),
				),
				tree.Sub("errors",
					tree.Empty("app_exception.dart"),
					tree.Empty("error_handler.dart"),
				),
				tree.Sub("network",
					tree.Empty("api_client.dart"),
					tree.Empty("api_interceptor.dart"),
					tree.Empty("network_info.dart"),
				),
			),
			tree.Sub("data",
				tree.Sub("models",
					tree.Sub("auth",
						tree.Empty("login_request.dart"),
						tree.Empty("login_response.dart"),
						tree.Empty("register_request.dart"),
						tree.Empty("user_model.dart"),
					),
					tree.Sub("wallet",
						tree.Empty("transaction_model.dart"),
						tree.Empty("deposit_request.dart"),
						tree.Empty("withdrawal_request.dart"),
						tree.Empty("wallet_history.dart"),
					),
					tree.Sub("portfolio",
						tree.Empty("portfolio_model.dart"),
						tree.Empty("investment_model.dart"),
					),
					tree.Sub("loans",
						tree.Empty("loan_model.dart"),
						tree.Empty("loan_application.dart"),
						tree.Empty("emi_calculation.dart"),
					),
					tree.Sub("tasks",
						tree.Empty("task_model.dart"),
						tree.Empty("task_submission.dart"),
						tree.Empty("task_category.dart"),
					),
					tree.Sub("referrals",
						tree.Empty("referral_model.dart"),
						tree.Empty("referral_earnings.dart"),
					),
					tree.Sub("kyc",
						tree.Empty("kyc_model.dart"),
						tree.Empty("kyc_document.dart"),
					),
					tree.Sub("notifications",
						tree.Empty("notification_model.dart"),
					),
					tree.Sub("common",
						tree.Empty("api_response.dart"),
						tree.Empty("pagination.dart"),
						tree.Empty("device_info.dart"),
					),
				),
				tree.Sub("repositories",
					tree.Empty("auth_repository.dart"),
					tree.Empty("wallet_repository.dart"),
					tree.Empty("portfolio_repository.dart"),
					tree.Empty("loans_repository.dart"),
					tree.Empty("tasks_repository.dart"),
					tree.Empty("referrals_repository.dart"),
					tree.Empty("kyc_repository.dart"),
					tree.Empty("notifications_repository.dart"),
					tree.Empty("user_repository.dart"),
				),
				tree.Sub("services",
					tree.Empty("api_service.dart"),
					tree.Empty("auth_service.dart"),
					tree.Empty("storage_service.dart"),
					tree.Empty("device_service.dart"),
					tree.Empty("notification_service.dart"),
					tree.Empty("biometric_service.dart"),
				),
			),
			tree.Sub("presentation",
				tree.Sub("providers",
					tree.Empty("auth_provider.dart"),
					tree.Empty("dashboard_provider.dart"),
					tree.Empty("wallet_provider.dart"),
					tree.Empty("portfolio_provider.dart"),
					tree.Empty("loans_provider.dart"),
					tree.Empty("tasks_provider.dart"),
					tree.Empty("referrals_provider.dart"),
					tree.Empty("kyc_provider.dart"),
					tree.Empty("notifications_provider.dart"),
					tree.Empty("app_state_provider.dart"),
				),
				tree.Sub("screens",
					tree.Sub("auth",
						tree.Empty("login_screen.dart"),
						tree.Empty("register_screen.dart"),
						tree.Empty("forgot_password_screen.dart"),
						tree.Empty("verify_otp_screen.dart"),
					),
					tree.Sub("dashboard",
						tree.Empty("dashboard_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("balance_card.dart"),
							tree.Empty("quick_actions.dart"),
							tree.Empty("recent_transactions.dart"),
							tree.Empty("portfolio_overview.dart"),
						),
					),
					tree.Sub("wallet",
						tree.Empty("wallet_screen.dart"),
						tree.Empty("deposit_screen.dart"),
						tree.Empty("withdrawal_screen.dart"),
						tree.Empty("transaction_history_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("deposit_form.dart"),
							tree.Empty("withdrawal_form.dart"),
							tree.Empty("transaction_item.dart"),
						),
					),
					tree.Sub("portfolio",
						tree.Empty("portfolio_screen.dart"),
						tree.Empty("investment_details_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("portfolio_chart.dart"),
							tree.Empty("investment_card.dart"),
							tree.Empty("performance_metrics.dart"),
						),
					),
					tree.Sub("loans",
						tree.Empty("loans_screen.dart"),
						tree.Empty("loan_application_screen.dart"),
						tree.Empty("loan_details_screen.dart"),
						tree.Empty("emi_calculator_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("loan_card.dart"),
							tree.Empty("emi_calculator.dart"),
							tree.Empty("repayment_schedule.dart"),
						),
					),
					tree.Sub("tasks",
						tree.Empty("tasks_screen.dart"),
						tree.Empty("task_details_screen.dart"),
						tree.Empty("task_submission_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("task_card.dart"),
							tree.Empty("task_filter.dart"),
							tree.Empty("submission_form.dart"),
						),
					),
					tree.Sub("referrals",
						tree.Empty("referrals_screen.dart"),
						tree.Empty("referral_earnings_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("referral_stats.dart"),
							tree.Empty("referral_link.dart"),
							tree.Empty("earnings_chart.dart"),
						),
					),
					tree.Sub("kyc",
						tree.Empty("kyc_screen.dart"),
						tree.Empty("document_upload_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("kyc_status.dart"),
							tree.Empty("document_upload.dart"),
							tree.Empty("verification_steps.dart"),
						),
					),
					tree.Sub("profile",
						tree.Empty("profile_screen.dart"),
						tree.Empty("settings_screen.dart"),
						tree.Empty("security_screen.dart"),
						tree.Empty("preferences_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("profile_header.dart"),
							tree.Empty("settings_section.dart"),
							tree.Empty("security_options.dart"),
						),
					),
					tree.Sub("notifications",
						tree.Empty("notifications_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("notification_item.dart"),
						),
					),
					tree.Sub("support",
						tree.Empty("support_screen.dart"),
						tree.Empty("create_ticket_screen.dart"),
						tree.Empty("ticket_details_screen.dart"),
						tree.Sub("widgets",
							tree.Empty("ticket_card.dart"),
							tree.Empty("faq_item.dart"),
						),
					),
				),
				tree.Sub("widgets",
					tree.Empty("app_bar.dart"),
					tree.Empty("bottom_nav_bar.dart"),
					tree.Empty("loading_overlay.dart"),
					tree.Empty("error_dialog.dart"),
					tree.Empty("success_dialog.dart"),
					tree.Empty("confirmation_dialog.dart"),
					tree.Empty("biometric_dialog.dart"),
				),
			),
			tree.Sub("router",
				tree.Empty("app_router.dart"),
				tree.Empty("route_paths.dart"),
				tree.Empty("route_guards.dart"),
			),
		),
	)
}
